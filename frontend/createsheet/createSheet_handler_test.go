package createsheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/uptrace/bun"

	"stocktake/infrastructure/audit"
	"stocktake/infrastructure/sqlite"
)

func openTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	name := strings.ToLower(strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.OpenDB(name)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

func countSheets(t *testing.T, db *sqlite.DB) int64 {
	t.Helper()
	var n int64
	err := db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`SELECT COUNT(*) FROM stock_sheets`).Scan(ctx, &n)
	})
	if err != nil {
		t.Fatalf("count sheets: %v", err)
	}
	return n
}

func validForm() url.Values {
	return url.Values{
		"sheet_name":     {"August cycle count"},
		"location":       {"Warehouse A"},
		"created_by":     {"Jordan"},
		"scheduled_date": {time.Now().AddDate(0, 0, 7).Format(DateKeyLayout)},
		"template":       {"cycle"},
	}
}

func postForm(handler http.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/take/sheets/new", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestCreateSheetPageRendersFullGrid(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/take/sheets/new", nil)
	rec := httptest.NewRecorder()
	CreateSheetPageQueryHandler()(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if got := strings.Count(body, `class="cal-day`); got != 42 {
		t.Fatalf("expected 42 calendar cells, got %d", got)
	}
	for _, field := range []string{FieldSheetName, FieldLocation, FieldCreatedBy} {
		if !strings.Contains(body, `name="`+field+`"`) {
			t.Fatalf("missing field %s", field)
		}
	}
}

func TestCreateSheetPageMonthNavigation(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/take/sheets/new?cal_y=2026&cal_m=12&cal_nav=next", nil)
	rec := httptest.NewRecorder()
	CreateSheetPageQueryHandler()(rec, req)

	if !strings.Contains(rec.Body.String(), "January 2027") {
		t.Fatalf("expected navigation past the year boundary")
	}
}

func TestCreateSheetPageIgnoresPastDayTap(t *testing.T) {
	past := time.Now().AddDate(0, 0, -3).Format(DateKeyLayout)
	req := httptest.NewRequest(http.MethodGet, "/take/sheets/new?select_day="+past, nil)
	rec := httptest.NewRecorder()
	CreateSheetPageQueryHandler()(rec, req)

	if strings.Contains(rec.Body.String(), `name="scheduled_date" value="`+past+`"`) {
		t.Fatalf("past day must not become the selection")
	}
}

func TestCreateSheetCommandRejectsInvalidForm(t *testing.T) {
	db := openTestDB(t)
	handler := CreateSheetCommandHandler(db, audit.NewService())

	rec := postForm(handler, url.Values{"sheet_name": {"ab"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected re-rendered form, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, msg := range []string{
		"Sheet name must be at least 3 characters",
		"Select a location",
		"Your name is required",
		"Pick a scheduled date",
	} {
		if !strings.Contains(body, msg) {
			t.Fatalf("missing error message %q", msg)
		}
	}
	if n := countSheets(t, db); n != 0 {
		t.Fatalf("invalid form must not create a sheet, found %d", n)
	}
}

func TestCreateSheetCommandCreatesAndRedirects(t *testing.T) {
	db := openTestDB(t)
	handler := CreateSheetCommandHandler(db, audit.NewService())

	old := submitDelay
	submitDelay = time.Millisecond
	t.Cleanup(func() { submitDelay = old })

	rec := postForm(handler, validForm())
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/take/sheets?status=") {
		t.Fatalf("unexpected redirect target %s", loc)
	}
	if n := countSheets(t, db); n != 1 {
		t.Fatalf("expected one sheet, found %d", n)
	}
}

func TestCreateSheetCommandOverlappingSubmits(t *testing.T) {
	db := openTestDB(t)
	handler := CreateSheetCommandHandler(db, audit.NewService())

	old := submitDelay
	submitDelay = 150 * time.Millisecond
	t.Cleanup(func() { submitDelay = old })

	var wg sync.WaitGroup
	results := make([]*httptest.ResponseRecorder, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = postForm(handler, validForm())
		}(i)
	}
	wg.Wait()

	var created, rejected int
	for _, rec := range results {
		loc := rec.Header().Get("Location")
		switch {
		case strings.HasPrefix(loc, "/take/sheets?"):
			created++
		case strings.HasPrefix(loc, "/take/sheets/new?"):
			rejected++
		}
	}
	if created != 1 || rejected != 1 {
		t.Fatalf("expected one create and one rejection, got %d/%d", created, rejected)
	}
	if n := countSheets(t, db); n != 1 {
		t.Fatalf("double submit must create one sheet, found %d", n)
	}
}
