package models

// View-state types are UI bookkeeping only. They are never persisted;
// the caches in infrastructure/cache hold them between requests.

// CountScreenState is the per-sheet state of the count screen: which
// location groups are open and which line item, if any, is being edited
// in the count modal.
type CountScreenState struct {
	ExpandedLocations map[string]bool
	EditingItemID     string
	CountInput        string
}

// Editing reports whether the count modal is open.
func (s CountScreenState) Editing() bool {
	return s.EditingItemID != ""
}

// Clone returns a deep copy so transitions can stay copy-on-write.
func (s CountScreenState) Clone() CountScreenState {
	out := s
	out.ExpandedLocations = make(map[string]bool, len(s.ExpandedLocations))
	for k, v := range s.ExpandedLocations {
		out.ExpandedLocations[k] = v
	}
	return out
}

// SheetListState tracks which sheet cards on the list screen are
// expanded. Each card owns its own flag.
type SheetListState struct {
	ExpandedSheets map[string]bool
}

// Clone returns a deep copy of the list state.
func (s SheetListState) Clone() SheetListState {
	out := SheetListState{ExpandedSheets: make(map[string]bool, len(s.ExpandedSheets))}
	for k, v := range s.ExpandedSheets {
		out.ExpandedSheets[k] = v
	}
	return out
}
