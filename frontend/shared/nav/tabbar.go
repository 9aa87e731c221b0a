package nav

import (
	"html"
	"strings"
)

// Tab identifiers used by screens to mark themselves active.
const (
	TabSheets  = "sheets"
	TabNew     = "new"
	TabExports = "exports"
)

type Tab struct {
	ID    string
	Label string
	Href  string
}

// Tabs is the fixed bottom tab bar, in display order.
var Tabs = []Tab{
	{ID: TabSheets, Label: "Sheets", Href: "/take/sheets"},
	{ID: TabNew, Label: "New Sheet", Href: "/take/sheets/new"},
	{ID: TabExports, Label: "Exports", Href: "/take/exports"},
}

// RenderTabBar renders the bottom navigation with the active tab marked.
func RenderTabBar(activeID string) string {
	var b strings.Builder
	b.WriteString(`<nav class="tabbar">`)
	for _, tab := range Tabs {
		class := ""
		if tab.ID == activeID {
			class = ` class="active"`
		}
		b.WriteString(`<a href="` + tab.Href + `"` + class + `>` + html.EscapeString(tab.Label) + `</a>`)
	}
	b.WriteString(`</nav>`)
	return b.String()
}
