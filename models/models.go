package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Sheet status values.
const (
	SheetStatusDraft      = "draft"
	SheetStatusInProgress = "in_progress"
	SheetStatusCompleted  = "completed"
)

// Locations is the fixed set of storage areas. Items carry one of these
// and the count screen groups by it.
var Locations = []string{
	"Warehouse A",
	"Warehouse B",
	"Warehouse C",
	"Storage Room 1",
	"Storage Room 2",
}

// ValidLocation reports whether loc is one of the fixed storage areas.
func ValidLocation(loc string) bool {
	for _, l := range Locations {
		if l == loc {
			return true
		}
	}
	return false
}

// StockSheet is one counting session. The ID doubles as the generated
// sheet code (ST-YYYYMMDDNNNN).
type StockSheet struct {
	bun.BaseModel `bun:"table:stock_sheets,alias:ss"`

	ID            string    `bun:"id,pk"`
	Name          string    `bun:"name,notnull"`
	Description   string    `bun:"description"`
	Location      string    `bun:"location,notnull"`
	CreatedBy     string    `bun:"created_by,notnull"`
	Status        string    `bun:"status,notnull,default:'draft'"`
	ScheduledDate time.Time `bun:"scheduled_date,notnull"`
	TotalItems    int64     `bun:"total_items,notnull,default:0"`
	Discrepancies int64     `bun:"discrepancies,notnull,default:0"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// StockItem is one inventory line inside a sheet. CountedQty and Variance
// are NULL until the line has been physically counted; they are always
// written together so variance never goes stale.
type StockItem struct {
	bun.BaseModel `bun:"table:stock_items,alias:si"`

	ID         string    `bun:"id,pk"`
	SheetID    string    `bun:"sheet_id,notnull"`
	Category   string    `bun:"category"`
	Name       string    `bun:"name,notnull"`
	Location   string    `bun:"location,notnull"`
	SystemQty  int64     `bun:"system_qty,notnull"`
	CountedQty *int64    `bun:"counted_qty"`
	Unit       string    `bun:"unit,notnull,default:'pcs'"`
	Variance   *int64    `bun:"variance"`
	CreatedAt  time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt  time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// Counted reports whether the line has a committed count.
func (i StockItem) Counted() bool {
	return i.CountedQty != nil
}

// AuditLog captures immutable change history for key operations.
type AuditLog struct {
	bun.BaseModel `bun:"table:audit_logs,alias:al"`

	ID         int64     `bun:"id,pk,autoincrement"`
	Actor      string    `bun:"actor,notnull"`
	Action     string    `bun:"action,notnull"`
	EntityType string    `bun:"entity_type,notnull"`
	EntityID   string    `bun:"entity_id,notnull"`
	BeforeJSON string    `bun:"before_json"`
	AfterJSON  string    `bun:"after_json"`
	CreatedAt  time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// SheetTemplate is a cosmetic starting template offered on the creation
// form. Selection has no effect on the created sheet.
type SheetTemplate struct {
	ID          string
	Name        string
	Description string
}

// SheetTemplates is the fixed template set, in display order. The first
// entry is the default selection.
var SheetTemplates = []SheetTemplate{
	{ID: "blank", Name: "Blank Sheet", Description: "Start from an empty count sheet"},
	{ID: "full", Name: "Full Warehouse", Description: "Count every location in one pass"},
	{ID: "cycle", Name: "Cycle Count", Description: "Rotating subset of high-turnover items"},
	{ID: "spot", Name: "Spot Check", Description: "Quick verification of flagged items"},
}

// DefaultTemplateID is the pre-selected template on a fresh form.
const DefaultTemplateID = "blank"
