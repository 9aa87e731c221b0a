package exports

import (
	"context"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	sharedhtml "stocktake/frontend/shared/html"
	"stocktake/frontend/shared/nav"
)

// ExportsPage lists every sheet with its download links.
func ExportsPage(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<div class="screen-title">Exports</div>`)
		if data.Message != "" {
			b.WriteString(`<div class="flash">` + html.EscapeString(data.Message) + `</div>`)
		}

		for _, sheet := range data.Sheets {
			writeSheetOption(&b, sheet)
		}
		if len(data.Sheets) == 0 {
			b.WriteString(`<div class="card">No sheets to export yet.</div>`)
		}

		_, err := io.WriteString(w, sharedhtml.RenderLayout("Exports", nav.TabExports, b.String()))
		return err
	})
}

func writeSheetOption(b *strings.Builder, sheet SheetOption) {
	b.WriteString(`<div class="card"><div class="card-head"><div>`)
	b.WriteString(`<strong>` + html.EscapeString(sheet.Name) + `</strong>`)
	b.WriteString(`<div class="meta">` + html.EscapeString(sheet.ID) + ` &middot; ` + html.EscapeString(sheet.Location) + `</div>`)
	b.WriteString(`<div class="meta">` + strconv.FormatInt(sheet.Counted, 10) + ` of ` + strconv.FormatInt(sheet.ItemCount, 10) + ` items counted</div>`)
	b.WriteString(`</div><span class="badge badge-` + html.EscapeString(sheet.Status) + `">` + html.EscapeString(sheet.Status) + `</span></div>`)

	base := "/take/exports/sheet/" + sheet.ID
	b.WriteString(`<div class="card-actions">`)
	b.WriteString(`<a class="btn" href="` + base + `.pdf">PDF</a>`)
	b.WriteString(`<a class="btn" href="` + base + `.xlsx">Excel</a>`)
	b.WriteString(`<a class="btn" href="` + base + `.csv">CSV</a>`)
	b.WriteString(`</div></div>`)
}
