package createsheet

import (
	"testing"
	"time"
)

var validateToday = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func TestValidateCollectsAllErrors(t *testing.T) {
	form := FormData{
		SheetName:     "ab",
		Location:      "",
		CreatedBy:     "X",
		ScheduledDate: "2000-01-01",
	}

	errs := Validate(form, validateToday)
	if len(errs) != 3 {
		t.Fatalf("expected exactly 3 errors, got %d: %v", len(errs), errs)
	}
	if errs[FieldSheetName] != ErrTooShort {
		t.Fatalf("expected too_short on sheet name, got %q", errs[FieldSheetName])
	}
	if errs[FieldLocation] != ErrRequired {
		t.Fatalf("expected required on location, got %q", errs[FieldLocation])
	}
	if errs[FieldScheduledDate] != ErrInPast {
		t.Fatalf("expected in_past on scheduled date, got %q", errs[FieldScheduledDate])
	}
}

func TestValidatePassesCompleteForm(t *testing.T) {
	form := FormData{
		SheetName:     "September Count",
		Location:      "Warehouse A",
		CreatedBy:     "Maria Chen",
		ScheduledDate: "2026-09-01",
	}
	if errs := Validate(form, validateToday); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateFieldRules(t *testing.T) {
	cases := []struct {
		name  string
		form  FormData
		field string
		code  string
	}{
		{"blank name", FormData{SheetName: "   "}, FieldSheetName, ErrRequired},
		{"short name after trim", FormData{SheetName: " ab "}, FieldSheetName, ErrTooShort},
		{"blank creator", FormData{CreatedBy: " "}, FieldCreatedBy, ErrRequired},
		{"unset date", FormData{ScheduledDate: ""}, FieldScheduledDate, ErrRequired},
		{"garbage date", FormData{ScheduledDate: "not-a-date"}, FieldScheduledDate, ErrRequired},
		{"today is allowed", FormData{ScheduledDate: "2026-08-30"}, FieldScheduledDate, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := Validate(tc.form, validateToday)
			if got := errs[tc.field]; got != tc.code {
				t.Fatalf("field %s: expected %q, got %q", tc.field, tc.code, got)
			}
		})
	}
}

func TestDirty(t *testing.T) {
	if Dirty(FormData{TemplateID: "blank"}) {
		t.Fatalf("default template alone should not be dirty")
	}
	if !Dirty(FormData{TemplateID: "cycle"}) {
		t.Fatalf("non-default template should be dirty")
	}
	if !Dirty(FormData{Description: "notes"}) {
		t.Fatalf("description edit should be dirty")
	}
	if Dirty(FormData{CreatedBy: "Maria"}) {
		t.Fatalf("creator alone should not trigger the unsaved prompt")
	}
}
