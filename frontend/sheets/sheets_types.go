package sheets

import "stocktake/models"

// SheetCard is one expandable card on the list screen.
type SheetCard struct {
	Sheet    models.StockSheet
	Expanded bool
}

// PageData feeds the sheet list renderer.
type PageData struct {
	Cards   []SheetCard
	Message string
	IsError bool
}
