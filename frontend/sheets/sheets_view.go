package sheets

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

// SheetsPage renders the list of stock take sheets as expandable cards.
func SheetsPage(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<div class="screen-title" style="display:flex;justify-content:space-between;align-items:center">Stock Take Sheets`)
		b.WriteString(`<a class="btn btn-primary" href="/take/sheets/new">+ New</a></div>`)

		if data.Message != "" {
			class := "flash"
			if data.IsError {
				class = "flash flash-error"
			}
			b.WriteString(`<div class="` + class + `">` + html.EscapeString(data.Message) + `</div>`)
		}

		if len(data.Cards) == 0 {
			b.WriteString(`<div class="card">No sheets yet. Create one from the New Sheet tab.</div>`)
		}
		for _, card := range data.Cards {
			writeSheetCard(&b, card)
		}

		_, err := io.WriteString(w, sharedhtml.RenderLayout("Stock Take Sheets", nav.TabSheets, b.String()))
		return err
	})
}

func writeSheetCard(b *strings.Builder, card SheetCard) {
	sheet := card.Sheet
	chevron := "&#9656;"
	if card.Expanded {
		chevron = "&#9662;"
	}

	b.WriteString(`<div class="card">`)
	b.WriteString(`<form method="POST" action="/take/sheets/` + sheet.ID + `/toggle">`)
	b.WriteString(`<button class="card-head btn-block" type="submit" style="width:100%;background:none;border:0;padding:0;cursor:pointer"><div style="text-align:left">`)
	b.WriteString(`<div><strong>` + html.EscapeString(sheet.Name) + `</strong></div>`)
	b.WriteString(`<div class="meta">` + html.EscapeString(sheet.ID) + ` ` + chevron + `</div>`)
	b.WriteString(`</div><span class="badge badge-` + html.EscapeString(sheet.Status) + `">` + html.EscapeString(statusLabel(sheet.Status)) + `</span></button></form>`)

	if card.Expanded {
		b.WriteString(`<div class="card-body">`)
		b.WriteString(`<div class="meta">Location: ` + html.EscapeString(sheet.Location) + `</div>`)
		b.WriteString(`<div class="meta">Created by: ` + html.EscapeString(sheet.CreatedBy) + `</div>`)
		b.WriteString(`<div class="meta">Scheduled: ` + sheet.ScheduledDate.Format("02/01/2006") + `</div>`)
		b.WriteString(`<div class="meta">Items: ` + strconv.FormatInt(sheet.TotalItems, 10) +
			` &middot; Discrepancies: ` + strconv.FormatInt(sheet.Discrepancies, 10) + `</div>`)
		if sheet.Description != "" {
			b.WriteString(`<div class="meta">` + html.EscapeString(sheet.Description) + `</div>`)
		}
		b.WriteString(`<div style="margin-top:10px;display:flex;gap:8px">`)
		b.WriteString(`<a class="btn btn-primary" href="/take/sheets/` + sheet.ID + `/count">Start Counting</a>`)
		b.WriteString(`<a class="btn btn-ghost" href="/take/exports/sheet/` + sheet.ID + `.pdf">PDF</a>`)
		b.WriteString(`</div></div>`)
	}
	b.WriteString(`</div>`)
}
