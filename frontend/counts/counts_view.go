package counts

import (
	"context"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	sharedhtml "stocktake/frontend/shared/html"
	"stocktake/frontend/shared/nav"
)

func statusLabel(status string) string {
	switch status {
	case "draft":
		return "Draft"
	case "in_progress":
		return "In Progress"
	case "completed":
		return "Completed"
	default:
		return status
	}
}

// CountPage renders the grouped count screen for one sheet.
func CountPage(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<div class="screen-title">` + html.EscapeString(data.Sheet.Name) + `</div>`)
		b.WriteString(`<div class="card"><div class="card-head"><div>`)
		b.WriteString(`<strong>` + html.EscapeString(data.Sheet.ID) + `</strong>`)
		b.WriteString(`<div class="meta">` + html.EscapeString(data.Sheet.Location) + ` &middot; ` + html.EscapeString(data.Sheet.CreatedBy) + `</div>`)
		b.WriteString(`</div><span class="badge badge-` + html.EscapeString(data.Sheet.Status) + `">` + html.EscapeString(statusLabel(data.Sheet.Status)) + `</span></div></div>`)

		if data.Message != "" {
			class := "flash"
			if data.IsError {
				class = "flash flash-error"
			}
			b.WriteString(`<div class="` + class + `">` + html.EscapeString(data.Message) + `</div>`)
		}

		for _, group := range data.Groups {
			writeLocationGroup(&b, data.Sheet.ID, group)
		}
		if len(data.Groups) == 0 {
			b.WriteString(`<div class="card">No items on this sheet yet.</div>`)
		}

		if data.Modal != nil {
			b.WriteString(renderCountModal(data.Sheet.ID, *data.Modal))
		}

		_, err := io.WriteString(w, sharedhtml.RenderLayout("Count - "+data.Sheet.Name, nav.TabSheets, b.String()))
		return err
	})
}

func writeLocationGroup(b *strings.Builder, sheetID string, group LocationGroup) {
	chevron := "&#9656;"
	if group.Expanded {
		chevron = "&#9662;"
	}
	b.WriteString(`<form method="POST" action="/take/sheets/` + sheetID + `/locations/toggle">`)
	b.WriteString(`<input type="hidden" name="location" value="` + html.EscapeString(group.Location) + `">`)
	b.WriteString(`<button class="group-head btn-block" type="submit" style="width:100%"><span>` + html.EscapeString(group.Location) + `</span>`)
	b.WriteString(`<span class="meta">` + strconv.Itoa(len(group.Items)) + ` items ` + chevron + `</span></button></form>`)

	if !group.Expanded {
		return
	}
	for _, item := range group.Items {
		b.WriteString(`<form method="POST" action="/take/sheets/` + sheetID + `/items/` + item.ID + `/edit">`)
		b.WriteString(`<button class="item-row btn-block" type="submit" style="width:100%"><div style="text-align:left">`)
		b.WriteString(`<div>` + html.EscapeString(item.Name) + `</div>`)
		b.WriteString(`<div class="meta">` + html.EscapeString(item.Category) + ` &middot; system ` + strconv.FormatInt(item.SystemQty, 10) + ` ` + html.EscapeString(item.Unit) + `</div>`)
		b.WriteString(`</div><div style="text-align:right">`)
		if item.CountedQty != nil {
			b.WriteString(`<div>counted ` + strconv.FormatInt(*item.CountedQty, 10) + `</div>`)
			b.WriteString(varianceHTML(*item.Variance))
		} else {
			b.WriteString(`<div class="uncounted">Not counted</div>`)
		}
		b.WriteString(`</div></button></form>`)
	}
}

func varianceHTML(v int64) string {
	switch {
	case v > 0:
		return fmt.Sprintf(`<div class="variance-pos">+%d</div>`, v)
	case v < 0:
		return fmt.Sprintf(`<div class="variance-neg">%d</div>`, v)
	default:
		return `<div class="variance-zero">0</div>`
	}
}
