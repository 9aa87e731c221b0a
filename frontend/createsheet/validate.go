package createsheet

import (
	"strings"
	"time"

	"stocktake/models"
)

// Validate runs every rule against the form and returns the per-field
// error map. All rules are evaluated on every pass; there is no early
// exit. The form is submittable iff the result is empty.
func Validate(form FormData, today time.Time) FormErrors {
	errs := make(FormErrors)
	today = Midnight(today)

	name := strings.TrimSpace(form.SheetName)
	switch {
	case name == "":
		errs[FieldSheetName] = ErrRequired
	case len([]rune(name)) < 3:
		errs[FieldSheetName] = ErrTooShort
	}

	if strings.TrimSpace(form.Location) == "" {
		errs[FieldLocation] = ErrRequired
	}

	if strings.TrimSpace(form.CreatedBy) == "" {
		errs[FieldCreatedBy] = ErrRequired
	}

	dateStr := strings.TrimSpace(form.ScheduledDate)
	if dateStr == "" {
		errs[FieldScheduledDate] = ErrRequired
	} else if scheduled, err := time.ParseInLocation(DateKeyLayout, dateStr, today.Location()); err != nil {
		// An unparseable selection is treated as unset.
		errs[FieldScheduledDate] = ErrRequired
	} else if scheduled.Before(today) {
		errs[FieldScheduledDate] = ErrInPast
	}

	return errs
}

// ErrorMessage turns a field/code pair into the text shown under the
// field.
func ErrorMessage(field, code string) string {
	switch code {
	case ErrRequired:
		switch field {
		case FieldSheetName:
			return "Sheet name is required"
		case FieldLocation:
			return "Select a location"
		case FieldCreatedBy:
			return "Your name is required"
		case FieldScheduledDate:
			return "Pick a scheduled date"
		}
		return "This field is required"
	case ErrTooShort:
		return "Sheet name must be at least 3 characters"
	case ErrInPast:
		return "Scheduled date cannot be in the past"
	}
	return code
}

// Dirty reports whether the form has unsaved edits worth a confirm
// prompt before navigating away.
func Dirty(form FormData) bool {
	return strings.TrimSpace(form.SheetName) != "" ||
		strings.TrimSpace(form.Description) != "" ||
		strings.TrimSpace(form.Location) != "" ||
		(form.TemplateID != "" && form.TemplateID != models.DefaultTemplateID)
}
