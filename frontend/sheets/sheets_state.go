package sheets

import "stocktake/models"

// ToggleSheet flips one card's expansion flag. Cards are independent;
// toggling one never affects another.
func ToggleSheet(state models.SheetListState, sheetID string) models.SheetListState {
	next := state.Clone()
	if next.ExpandedSheets[sheetID] {
		delete(next.ExpandedSheets, sheetID)
	} else {
		next.ExpandedSheets[sheetID] = true
	}
	return next
}
