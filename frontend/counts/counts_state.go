package counts

import (
	"strconv"
	"strings"

	"stocktake/models"
)

// Pure view-state transitions for the count screen. Handlers load the
// current state from the screen cache, apply one transition and store
// the result; nothing here touches the database.

// GroupByLocation partitions items by their location field. Group order
// is first-seen order of locations as the input is scanned; item order
// inside a group follows the input.
func GroupByLocation(items []models.StockItem) []LocationGroup {
	index := make(map[string]int, len(models.Locations))
	groups := make([]LocationGroup, 0, len(models.Locations))
	for _, item := range items {
		i, ok := index[item.Location]
		if !ok {
			i = len(groups)
			index[item.Location] = i
			groups = append(groups, LocationGroup{Location: item.Location})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// DefaultScreenState seeds a fresh screen with exactly the first-seen
// location expanded and the modal closed.
func DefaultScreenState(items []models.StockItem) models.CountScreenState {
	state := models.CountScreenState{ExpandedLocations: make(map[string]bool)}
	if len(items) > 0 {
		state.ExpandedLocations[items[0].Location] = true
	}
	return state
}

// ToggleLocation flips a location's membership in the expanded set.
func ToggleLocation(state models.CountScreenState, location string) models.CountScreenState {
	next := state.Clone()
	if next.ExpandedLocations[location] {
		delete(next.ExpandedLocations, location)
	} else {
		next.ExpandedLocations[location] = true
	}
	return next
}

// OpenEditor moves the modal to Editing for the given item, seeding the
// input with the existing count when present, otherwise the system
// quantity. The seed is display-only; nothing is committed. Unknown
// item IDs leave the state unchanged.
func OpenEditor(state models.CountScreenState, items []models.StockItem, itemID string) models.CountScreenState {
	for _, item := range items {
		if item.ID != itemID {
			continue
		}
		next := state.Clone()
		next.EditingItemID = item.ID
		if item.CountedQty != nil {
			next.CountInput = strconv.FormatInt(*item.CountedQty, 10)
		} else {
			next.CountInput = strconv.FormatInt(item.SystemQty, 10)
		}
		return next
	}
	return state
}

// CancelEditor closes the modal without committing anything.
func CancelEditor(state models.CountScreenState) models.CountScreenState {
	next := state.Clone()
	next.EditingItemID = ""
	next.CountInput = ""
	return next
}

// ParseCount parses the modal input. Empty or non-numeric input is not
// a count.
func ParseCount(input string) (int64, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ApplyCount replaces exactly one item's count, recomputing variance in
// the same step. The returned slice is a fresh copy with every other
// element untouched. Returns false when the item is not present.
func ApplyCount(items []models.StockItem, itemID string, counted int64) ([]models.StockItem, bool) {
	found := false
	next := make([]models.StockItem, len(items))
	copy(next, items)
	for i := range next {
		if next[i].ID != itemID {
			continue
		}
		c := counted
		v := counted - next[i].SystemQty
		next[i].CountedQty = &c
		next[i].Variance = &v
		found = true
		break
	}
	return next, found
}

// SaveCount runs the save transition of the modal state machine. A
// missing or malformed input is a no-op: the items come back unchanged
// and the modal stays open. On success the target item is replaced, the
// modal closes and the input clears.
func SaveCount(state models.CountScreenState, items []models.StockItem, input string) (models.CountScreenState, []models.StockItem, bool) {
	if !state.Editing() {
		return state, items, false
	}
	counted, ok := ParseCount(input)
	if !ok {
		return state, items, false
	}
	next, found := ApplyCount(items, state.EditingItemID, counted)
	if !found {
		return state, items, false
	}
	return CancelEditor(state), next, true
}
