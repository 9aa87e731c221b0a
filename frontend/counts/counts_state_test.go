package counts

import (
	"reflect"
	"testing"

	"stocktake/models"
)

func testItems() []models.StockItem {
	c := int64(24)
	v := int64(2)
	return []models.StockItem{
		{ID: "a", Name: "Sparkling Water", Location: "Warehouse A", SystemQty: 100, Unit: "btl"},
		{ID: "b", Name: "Basmati Rice", Location: "Warehouse A", SystemQty: 80, Unit: "bag"},
		{ID: "c", Name: "Cheddar Block", Location: "Storage Room 1", SystemQty: 22, CountedQty: &c, Variance: &v, Unit: "pcs"},
		{ID: "d", Name: "Carton Box", Location: "Warehouse B", SystemQty: 300, Unit: "pcs"},
		{ID: "e", Name: "Degreaser", Location: "Storage Room 1", SystemQty: 18, Unit: "can"},
	}
}

func TestGroupByLocationKeepsFirstSeenOrder(t *testing.T) {
	groups := GroupByLocation(testItems())

	wantOrder := []string{"Warehouse A", "Storage Room 1", "Warehouse B"}
	if len(groups) != len(wantOrder) {
		t.Fatalf("expected %d groups, got %d", len(wantOrder), len(groups))
	}
	for i, want := range wantOrder {
		if groups[i].Location != want {
			t.Fatalf("group %d: expected %q, got %q", i, want, groups[i].Location)
		}
	}
}

func TestGroupByLocationNeitherDropsNorDuplicates(t *testing.T) {
	items := testItems()
	groups := GroupByLocation(items)

	seen := make(map[string]int)
	for _, g := range groups {
		for _, item := range g.Items {
			if item.Location != g.Location {
				t.Fatalf("item %s grouped under %q but located at %q", item.ID, g.Location, item.Location)
			}
			seen[item.ID]++
		}
	}
	if len(seen) != len(items) {
		t.Fatalf("expected %d distinct items across groups, got %d", len(items), len(seen))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("item %s appears %d times", id, n)
		}
	}
}

func TestDefaultScreenStateExpandsOneLocation(t *testing.T) {
	state := DefaultScreenState(testItems())
	if len(state.ExpandedLocations) != 1 {
		t.Fatalf("expected exactly one default-expanded location, got %d", len(state.ExpandedLocations))
	}
	if !state.ExpandedLocations["Warehouse A"] {
		t.Fatalf("expected first-seen location to be expanded")
	}
}

func TestToggleLocationRoundTrip(t *testing.T) {
	state := DefaultScreenState(testItems())
	before := state.Clone()

	once := ToggleLocation(state, "Warehouse B")
	if !once.ExpandedLocations["Warehouse B"] {
		t.Fatalf("expected toggle to expand Warehouse B")
	}
	twice := ToggleLocation(once, "Warehouse B")
	if !reflect.DeepEqual(twice.ExpandedLocations, before.ExpandedLocations) {
		t.Fatalf("expected double toggle to restore membership, got %v", twice.ExpandedLocations)
	}
}

func TestOpenEditorSeedsInput(t *testing.T) {
	items := testItems()
	state := DefaultScreenState(items)

	uncounted := OpenEditor(state, items, "a")
	if uncounted.EditingItemID != "a" || uncounted.CountInput != "100" {
		t.Fatalf("expected system qty seed for uncounted item, got %q/%q", uncounted.EditingItemID, uncounted.CountInput)
	}

	counted := OpenEditor(state, items, "c")
	if counted.CountInput != "24" {
		t.Fatalf("expected counted qty seed, got %q", counted.CountInput)
	}

	missing := OpenEditor(state, items, "nope")
	if missing.Editing() {
		t.Fatalf("expected unknown item to leave modal closed")
	}
}

func TestSaveCountComputesVarianceAndLeavesOthersAlone(t *testing.T) {
	items := testItems()
	state := OpenEditor(DefaultScreenState(items), items, "a")

	next, updated, saved := SaveCount(state, items, "98")
	if !saved {
		t.Fatalf("expected save to succeed")
	}
	if next.Editing() || next.CountInput != "" {
		t.Fatalf("expected modal closed and input cleared after save")
	}

	target := updated[0]
	if target.CountedQty == nil || *target.CountedQty != 98 {
		t.Fatalf("expected counted qty 98, got %v", target.CountedQty)
	}
	if target.Variance == nil || *target.Variance != -2 {
		t.Fatalf("expected variance -2, got %v", target.Variance)
	}

	for i := 1; i < len(items); i++ {
		if !reflect.DeepEqual(items[i], updated[i]) {
			t.Fatalf("item %s changed by unrelated save", items[i].ID)
		}
	}
	if items[0].CountedQty != nil {
		t.Fatalf("expected original slice untouched")
	}
}

func TestSaveCountRejectsMalformedInput(t *testing.T) {
	items := testItems()
	state := OpenEditor(DefaultScreenState(items), items, "a")

	for _, input := range []string{"", "  ", "abc", "9.5", "12x"} {
		next, updated, saved := SaveCount(state, items, input)
		if saved {
			t.Fatalf("input %q: expected save to be a no-op", input)
		}
		if !next.Editing() {
			t.Fatalf("input %q: expected modal to stay open", input)
		}
		if !reflect.DeepEqual(items, updated) {
			t.Fatalf("input %q: expected items unchanged", input)
		}
	}
}

func TestSaveCountWithoutOpenModalIsNoOp(t *testing.T) {
	items := testItems()
	state := DefaultScreenState(items)

	_, _, saved := SaveCount(state, items, "5")
	if saved {
		t.Fatalf("expected save with closed modal to be a no-op")
	}
}
