package counts

import "stocktake/models"

// LocationGroup is one expandable section of the count screen: every
// item whose location matches, in input order.
type LocationGroup struct {
	Location string
	Items    []models.StockItem
	Expanded bool
}

// ModalView carries the open count modal's display state.
type ModalView struct {
	Item       models.StockItem
	CountInput string
}

// PageData feeds the count screen renderer.
type PageData struct {
	Sheet   models.StockSheet
	Groups  []LocationGroup
	Modal   *ModalView
	Message string
	IsError bool
}
