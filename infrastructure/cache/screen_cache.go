package cache

import (
	"sync"

	"stocktake/models"
)

// CountScreenCache keeps count screen view state per sheet.
type CountScreenCache struct {
	mu     sync.RWMutex
	states map[string]models.CountScreenState
}

func NewCountScreenCache() *CountScreenCache {
	return &CountScreenCache{states: make(map[string]models.CountScreenState)}
}

// Get returns the stored state for a sheet, if any.
func (c *CountScreenCache) Get(sheetID string) (models.CountScreenState, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.states[sheetID]
	if !ok {
		return models.CountScreenState{}, false
	}
	return s.Clone(), true
}

func (c *CountScreenCache) Put(sheetID string, state models.CountScreenState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states[sheetID] = state.Clone()
}

// SheetListCache holds the single list screen's card expansion state.
type SheetListCache struct {
	mu    sync.RWMutex
	state models.SheetListState
}

func NewSheetListCache() *SheetListCache {
	return &SheetListCache{state: models.SheetListState{ExpandedSheets: make(map[string]bool)}}
}

func (c *SheetListCache) Get() models.SheetListState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Clone()
}

func (c *SheetListCache) Put(state models.SheetListState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state.Clone()
}
