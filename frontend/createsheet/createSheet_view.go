package createsheet

import (
	"context"
	"html"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	sharedhtml "stocktake/frontend/shared/html"
	"stocktake/frontend/shared/nav"
	"stocktake/models"
)

var weekdayHeaders = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// CreateSheetPage renders the creation form with the inline calendar.
// The whole screen is one form posting to the create endpoint; calendar
// buttons re-submit it as a GET so typed values survive navigation.
func CreateSheetPage(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<div class="screen-title">New Stock Take</div>`)
		if data.Message != "" {
			b.WriteString(`<div class="flash flash-error">` + html.EscapeString(data.Message) + `</div>`)
		}

		b.WriteString(`<form id="create-form" method="POST" action="/take/sheets/new">`)

		writeTextField(&b, FieldSheetName, "Sheet name", data.Form.SheetName, "e.g. August cycle count", data.Errors)

		b.WriteString(`<div class="field"><label for="description">Description</label>`)
		b.WriteString(`<textarea id="description" name="description" rows="2" placeholder="Optional notes">` + html.EscapeString(data.Form.Description) + `</textarea></div>`)

		writeLocationField(&b, data.Form.Location, data.Errors)
		writeTextField(&b, FieldCreatedBy, "Created by", data.Form.CreatedBy, "Your name", data.Errors)
		writeTemplateCards(&b, data.Form.TemplateID)
		writeCalendar(&b, data)

		b.WriteString(`<button id="create-submit" class="btn btn-primary btn-block" type="submit">Create Sheet</button>`)
		b.WriteString(`</form>`)

		b.WriteString(createFormScript(Dirty(data.Form)))

		_, err := io.WriteString(w, sharedhtml.RenderLayout("New Stock Take", nav.TabNew, b.String()))
		return err
	})
}

func writeTextField(b *strings.Builder, field, label, value, placeholder string, errs FormErrors) {
	b.WriteString(`<div class="field"><label for="` + field + `">` + html.EscapeString(label) + `</label>`)
	b.WriteString(`<input type="text" id="` + field + `" name="` + field + `" value="` + html.EscapeString(value) + `" placeholder="` + html.EscapeString(placeholder) + `">`)
	writeFieldError(b, field, errs)
	b.WriteString(`</div>`)
}

func writeLocationField(b *strings.Builder, selected string, errs FormErrors) {
	b.WriteString(`<div class="field"><label for="location">Location</label>`)
	b.WriteString(`<select id="location" name="location">`)
	b.WriteString(`<option value="">Select a location</option>`)
	for _, loc := range models.Locations {
		sel := ""
		if loc == selected {
			sel = ` selected`
		}
		b.WriteString(`<option value="` + html.EscapeString(loc) + `"` + sel + `>` + html.EscapeString(loc) + `</option>`)
	}
	b.WriteString(`</select>`)
	writeFieldError(b, FieldLocation, errs)
	b.WriteString(`</div>`)
}

func writeFieldError(b *strings.Builder, field string, errs FormErrors) {
	if code, ok := errs[field]; ok {
		b.WriteString(`<div class="field-error" data-error-for="` + field + `">` + html.EscapeString(ErrorMessage(field, code)) + `</div>`)
	}
}

func writeTemplateCards(b *strings.Builder, selectedID string) {
	if selectedID == "" {
		selectedID = models.DefaultTemplateID
	}
	b.WriteString(`<div class="field"><label>Template</label><div class="template-grid">`)
	for _, tpl := range models.SheetTemplates {
		checked := ""
		class := "template-card"
		if tpl.ID == selectedID {
			checked = ` checked`
			class += " template-selected"
		}
		b.WriteString(`<label class="` + class + `">`)
		b.WriteString(`<input type="radio" name="template" value="` + tpl.ID + `"` + checked + `>`)
		b.WriteString(`<strong>` + html.EscapeString(tpl.Name) + `</strong>`)
		b.WriteString(`<span class="meta">` + html.EscapeString(tpl.Description) + `</span>`)
		b.WriteString(`</label>`)
	}
	b.WriteString(`</div></div>`)
}

func writeCalendar(b *strings.Builder, data PageData) {
	month := time.Month(data.CalMonth)

	b.WriteString(`<div class="field"><label>Scheduled date</label>`)
	b.WriteString(`<input type="hidden" name="scheduled_date" value="` + html.EscapeString(data.Form.ScheduledDate) + `">`)
	b.WriteString(`<input type="hidden" name="cal_y" value="` + strconv.Itoa(data.CalYear) + `">`)
	b.WriteString(`<input type="hidden" name="cal_m" value="` + strconv.Itoa(data.CalMonth) + `">`)

	b.WriteString(`<div class="calendar"><div class="cal-head">`)
	b.WriteString(calNavButton("prev", "&#9664;"))
	b.WriteString(`<span class="cal-title">` + month.String() + ` ` + strconv.Itoa(data.CalYear) + `</span>`)
	b.WriteString(calNavButton("next", "&#9654;"))
	b.WriteString(`</div><div class="cal-grid">`)

	for _, wd := range weekdayHeaders {
		b.WriteString(`<span class="cal-weekday">` + wd + `</span>`)
	}
	for _, day := range data.Grid {
		b.WriteString(calDayButton(day))
	}
	b.WriteString(`</div></div>`)
	writeFieldError(b, FieldScheduledDate, data.Errors)
	b.WriteString(`</div>`)
}

// calNavButton submits the surrounding form as a GET so every typed
// field rides along as a query parameter.
func calNavButton(dir, glyph string) string {
	return `<button type="submit" class="cal-nav" name="cal_nav" value="` + dir + `"` +
		` formmethod="get" formaction="/take/sheets/new" formnovalidate>` + glyph + `</button>`
}

func calDayButton(day CalendarDay) string {
	classes := []string{"cal-day"}
	if !day.InCurrentMonth {
		classes = append(classes, "cal-outside")
	}
	if day.IsToday {
		classes = append(classes, "cal-today")
	}
	if day.IsSelected {
		classes = append(classes, "cal-selected")
	}
	if day.IsPast {
		classes = append(classes, "cal-past")
	}

	attrs := ` formmethod="get" formaction="/take/sheets/new" formnovalidate`
	if day.IsPast {
		attrs = ` disabled`
	}
	return `<button type="submit" class="` + strings.Join(classes, " ") + `"` +
		` name="select_day" value="` + day.DateKey + `"` + attrs + `>` +
		strconv.Itoa(day.Day) + `</button>`
}

// createFormScript wires the small client niceties: field errors clear
// as soon as the user edits, the submit button locks after the first
// tap, and leaving a dirty form asks for confirmation.
func createFormScript(dirty bool) string {
	var b strings.Builder
	b.WriteString(`<script>(function(){`)
	b.WriteString(`var form=document.getElementById('create-form');if(!form)return;`)
	b.WriteString(`var dirty=` + strconv.FormatBool(dirty) + `;`)
	b.WriteString(`form.addEventListener('input',function(e){dirty=true;` +
		`var n=e.target&&e.target.name;if(!n)return;` +
		`var err=form.querySelector('[data-error-for="'+n+'"]');if(err)err.remove();});`)
	b.WriteString(`form.addEventListener('submit',function(e){` +
		`if(e.submitter&&e.submitter.getAttribute('formmethod')==='get')return;` +
		`dirty=false;` +
		`var btn=document.getElementById('create-submit');` +
		`if(btn){btn.disabled=true;btn.textContent='Creating...';}});`)
	b.WriteString(`window.addEventListener('beforeunload',function(e){` +
		`if(!dirty)return;e.preventDefault();e.returnValue='';});`)
	b.WriteString(`})();</script>`)
	return b.String()
}
