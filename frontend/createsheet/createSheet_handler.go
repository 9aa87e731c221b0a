package createsheet

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"stocktake/infrastructure/audit"
	"stocktake/infrastructure/sqlite"
	"stocktake/models"
)

// submitDelay stands in for the round trip a real backend would take.
var submitDelay = 600 * time.Millisecond

func formFromValues(values url.Values) FormData {
	form := FormData{
		SheetName:     values.Get("sheet_name"),
		Description:   values.Get("description"),
		Location:      values.Get("location"),
		CreatedBy:     values.Get("created_by"),
		ScheduledDate: strings.TrimSpace(values.Get("scheduled_date")),
		TemplateID:    values.Get("template"),
	}
	if form.TemplateID == "" {
		form.TemplateID = models.DefaultTemplateID
	}
	return form
}

// calendarFromQuery resolves the reference month and applies any
// navigation or day-tap carried in the query. Taps on past days are
// rejected here regardless of what the markup allowed.
func calendarFromQuery(values url.Values, form *FormData, today time.Time) (int, time.Month) {
	year, month := today.Year(), today.Month()
	if selected, err := time.ParseInLocation(DateKeyLayout, form.ScheduledDate, today.Location()); err == nil {
		year, month = selected.Year(), selected.Month()
	}
	if y, err := strconv.Atoi(values.Get("cal_y")); err == nil {
		if m, err := strconv.Atoi(values.Get("cal_m")); err == nil && m >= 1 && m <= 12 {
			year, month = y, time.Month(m)
		}
	}

	switch values.Get("cal_nav") {
	case "prev":
		year, month = ShiftMonth(year, month, -1)
	case "next":
		year, month = ShiftMonth(year, month, 1)
	}

	if tap := strings.TrimSpace(values.Get("select_day")); tap != "" {
		if day, err := time.ParseInLocation(DateKeyLayout, tap, today.Location()); err == nil {
			cell := CalendarDay{DateKey: tap, IsPast: Midnight(day).Before(Midnight(today))}
			form.ScheduledDate = SelectDate(form.ScheduledDate, cell)
		}
	}
	return year, month
}

// CreateSheetPageQueryHandler renders the creation form. Calendar
// navigation and day selection arrive as GET submissions so the other
// field values survive the round trip.
func CreateSheetPageQueryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		today := time.Now()
		form := formFromValues(r.URL.Query())
		year, month := calendarFromQuery(r.URL.Query(), &form, today)

		data := PageData{
			Form:     form,
			Errors:   make(FormErrors),
			CalYear:  year,
			CalMonth: int(month),
			Grid:     BuildMonthGrid(year, month, form.ScheduledDate, today),
			Message:  r.URL.Query().Get("status"),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := CreateSheetPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render creation form", http.StatusInternalServerError)
			return
		}
	}
}

// CreateSheetCommandHandler validates and creates a sheet. A second
// submit while one is in flight is rejected so a double tap cannot
// mint two identifiers.
func CreateSheetCommandHandler(db *sqlite.DB, auditSvc *audit.Service) http.HandlerFunc {
	var (
		mu       sync.Mutex
		inFlight bool
	)
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/take/sheets/new", http.StatusSeeOther)
			return
		}
		today := time.Now()
		form := formFromValues(r.PostForm)

		errs := Validate(form, today)
		if len(errs) > 0 {
			year, month := calendarFromQuery(r.PostForm, &form, today)
			data := PageData{
				Form:     form,
				Errors:   errs,
				CalYear:  year,
				CalMonth: int(month),
				Grid:     BuildMonthGrid(year, month, form.ScheduledDate, today),
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			if err := CreateSheetPage(data).Render(r.Context(), w); err != nil {
				http.Error(w, "failed to render creation form", http.StatusInternalServerError)
			}
			return
		}

		mu.Lock()
		if inFlight {
			mu.Unlock()
			http.Redirect(w, r, "/take/sheets/new?status="+url.QueryEscape("A sheet is already being created"), http.StatusSeeOther)
			return
		}
		inFlight = true
		mu.Unlock()
		defer func() {
			mu.Lock()
			inFlight = false
			mu.Unlock()
		}()

		// Simulated backend latency; runs to completion, no cancellation.
		time.Sleep(submitDelay)

		scheduled, _ := time.ParseInLocation(DateKeyLayout, form.ScheduledDate, today.Location())
		sheet := models.StockSheet{
			ID:            GenerateSheetID(today),
			Name:          strings.TrimSpace(form.SheetName),
			Description:   strings.TrimSpace(form.Description),
			Location:      form.Location,
			CreatedBy:     strings.TrimSpace(form.CreatedBy),
			Status:        models.SheetStatusDraft,
			ScheduledDate: scheduled,
		}
		if err := InsertSheet(r.Context(), db, auditSvc, sheet); err != nil {
			slog.Error("insert sheet failed", slog.String("sheet_id", sheet.ID), slog.Any("err", err))
			http.Redirect(w, r, "/take/sheets/new?status="+url.QueryEscape("Failed to create sheet"), http.StatusSeeOther)
			return
		}

		http.Redirect(w, r, "/take/sheets?status="+url.QueryEscape("Sheet "+sheet.ID+" created"), http.StatusSeeOther)
	}
}
