package createsheet

// FormData is the transient state of the creation form. ScheduledDate
// carries the canonical YYYY-MM-DD selection key, empty when unset.
type FormData struct {
	SheetName     string
	Description   string
	Location      string
	CreatedBy     string
	ScheduledDate string
	TemplateID    string
}

// Validation error codes, keyed per field in FormErrors.
const (
	ErrRequired = "required"
	ErrTooShort = "too_short"
	ErrInPast   = "in_past"
)

// Form field names, shared by validation and the renderer.
const (
	FieldSheetName     = "sheet_name"
	FieldLocation      = "location"
	FieldCreatedBy     = "created_by"
	FieldScheduledDate = "scheduled_date"
)

// FormErrors maps a field name to its error code. An empty map means
// the form is submittable.
type FormErrors map[string]string

// PageData feeds the creation screen renderer.
type PageData struct {
	Form     FormData
	Errors   FormErrors
	CalYear  int
	CalMonth int
	Grid     []CalendarDay
	Message  string
}
