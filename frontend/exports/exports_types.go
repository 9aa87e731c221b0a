package exports

// SheetOption is one downloadable sheet on the exports tab.
type SheetOption struct {
	ID        string `bun:"id"`
	Name      string `bun:"name"`
	Location  string `bun:"location"`
	Status    string `bun:"status"`
	ItemCount int64  `bun:"item_count"`
	Counted   int64  `bun:"counted"`
}

// PageData feeds the exports tab renderer.
type PageData struct {
	Sheets  []SheetOption
	Message string
}

// SheetSummary is the header block shared by every export format.
type SheetSummary struct {
	ID            string `bun:"id"`
	Name          string `bun:"name"`
	Description   string `bun:"description"`
	Location      string `bun:"location"`
	CreatedBy     string `bun:"created_by"`
	Status        string `bun:"status"`
	ScheduledDate string `bun:"scheduled_date"`
}

// ExportRow is one item line in a sheet export, counted columns empty
// until a count is recorded.
type ExportRow struct {
	Name       string `bun:"name"`
	Category   string `bun:"category"`
	Location   string `bun:"location"`
	Unit       string `bun:"unit"`
	SystemQty  int64  `bun:"system_qty"`
	CountedQty *int64 `bun:"counted_qty"`
	Variance   *int64 `bun:"variance"`
}
