package counts

import (
	"html"
	"strconv"
	"strings"
)

// renderCountModal renders the count-entry dialog for the item under
// edit. The input arrives seeded from the view state; the save handler
// does the real parsing, so a malformed value just reopens the modal.
func renderCountModal(sheetID string, modal ModalView) string {
	item := modal.Item

	var b strings.Builder
	b.WriteString(`<div class="modal-backdrop"><div class="modal-box">`)
	b.WriteString(`<h3>` + html.EscapeString(item.Name) + `</h3>`)
	b.WriteString(`<p class="meta">` + html.EscapeString(item.Location) + ` &middot; system qty ` + strconv.FormatInt(item.SystemQty, 10) + ` ` + html.EscapeString(item.Unit) + `</p>`)

	b.WriteString(`<form method="POST" action="/take/sheets/` + sheetID + `/items/` + item.ID + `/count">`)
	b.WriteString(`<div class="field"><label for="count_input">Counted quantity</label>`)
	b.WriteString(`<input id="count_input" type="text" inputmode="numeric" name="count" value="` + html.EscapeString(modal.CountInput) + `" autofocus>`)
	b.WriteString(`</div>`)
	b.WriteString(`<button class="btn btn-primary btn-block" type="submit">Save Count</button>`)
	b.WriteString(`</form>`)

	b.WriteString(`<form method="POST" action="/take/sheets/` + sheetID + `/items/cancel" style="margin-top:8px">`)
	b.WriteString(`<button class="btn btn-ghost btn-block" type="submit">Cancel</button>`)
	b.WriteString(`</form>`)
	b.WriteString(`</div></div>`)
	return b.String()
}
