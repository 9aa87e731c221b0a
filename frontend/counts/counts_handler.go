package counts

import (
	"database/sql"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"stocktake/infrastructure/audit"
	"stocktake/infrastructure/cache"
	"stocktake/infrastructure/sqlite"
	"stocktake/models"
)

func countPageURL(sheetID string) string {
	return "/take/sheets/" + url.PathEscape(sheetID) + "/count"
}

// screenState returns the cached view state for a sheet, seeding the
// default (one expanded location, modal closed) on first visit.
func screenState(states *cache.CountScreenCache, sheetID string, items []models.StockItem) models.CountScreenState {
	if state, ok := states.Get(sheetID); ok {
		return state
	}
	state := DefaultScreenState(items)
	states.Put(sheetID, state)
	return state
}

// CountPageQueryHandler renders the grouped count screen for a sheet.
func CountPageQueryHandler(db *sqlite.DB, states *cache.CountScreenCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sheetID := chi.URLParam(r, "id")
		sheet, err := LoadSheet(r.Context(), db, sheetID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "sheet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "failed to load sheet", http.StatusInternalServerError)
			return
		}
		items, err := LoadItems(r.Context(), db, sheetID)
		if err != nil {
			http.Error(w, "failed to load items", http.StatusInternalServerError)
			return
		}

		state := screenState(states, sheetID, items)

		groups := GroupByLocation(items)
		for i := range groups {
			groups[i].Expanded = state.ExpandedLocations[groups[i].Location]
		}

		data := PageData{Sheet: sheet, Groups: groups}
		if state.Editing() {
			for _, item := range items {
				if item.ID == state.EditingItemID {
					data.Modal = &ModalView{Item: item, CountInput: state.CountInput}
					break
				}
			}
			if data.Modal == nil {
				// Item vanished from under the modal; drop the stale edit.
				states.Put(sheetID, CancelEditor(state))
			}
		}
		if msg := strings.TrimSpace(r.URL.Query().Get("status")); msg != "" {
			data.Message = msg
		}
		if msg := strings.TrimSpace(r.URL.Query().Get("error")); msg != "" {
			data.Message = msg
			data.IsError = true
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := CountPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render count page", http.StatusInternalServerError)
			return
		}
	}
}

// ToggleLocationCommandHandler expands or collapses one location group.
func ToggleLocationCommandHandler(db *sqlite.DB, states *cache.CountScreenCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sheetID := chi.URLParam(r, "id")
		location := strings.TrimSpace(r.FormValue("location"))
		if location == "" {
			http.Redirect(w, r, countPageURL(sheetID), http.StatusSeeOther)
			return
		}
		items, err := LoadItems(r.Context(), db, sheetID)
		if err != nil {
			http.Error(w, "failed to load items", http.StatusInternalServerError)
			return
		}
		state := screenState(states, sheetID, items)
		states.Put(sheetID, ToggleLocation(state, location))
		http.Redirect(w, r, countPageURL(sheetID), http.StatusSeeOther)
	}
}

// OpenCountModalCommandHandler moves the modal to Editing for one item.
func OpenCountModalCommandHandler(db *sqlite.DB, states *cache.CountScreenCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sheetID := chi.URLParam(r, "id")
		itemID := chi.URLParam(r, "itemID")
		items, err := LoadItems(r.Context(), db, sheetID)
		if err != nil {
			http.Error(w, "failed to load items", http.StatusInternalServerError)
			return
		}
		state := screenState(states, sheetID, items)
		states.Put(sheetID, OpenEditor(state, items, itemID))
		http.Redirect(w, r, countPageURL(sheetID), http.StatusSeeOther)
	}
}

// SaveCountCommandHandler commits the modal input. Malformed input is
// ignored and the modal stays open.
func SaveCountCommandHandler(db *sqlite.DB, states *cache.CountScreenCache, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sheetID := chi.URLParam(r, "id")
		itemID := chi.URLParam(r, "itemID")
		items, err := LoadItems(r.Context(), db, sheetID)
		if err != nil {
			http.Error(w, "failed to load items", http.StatusInternalServerError)
			return
		}

		state := screenState(states, sheetID, items)
		if !state.Editing() || state.EditingItemID != itemID {
			http.Redirect(w, r, countPageURL(sheetID), http.StatusSeeOther)
			return
		}

		input := r.FormValue("count")
		next, _, saved := SaveCount(state, items, input)
		if !saved {
			// Keep whatever the user typed so the reopened modal shows it.
			retry := state.Clone()
			retry.CountInput = input
			states.Put(sheetID, retry)
			http.Redirect(w, r, countPageURL(sheetID), http.StatusSeeOther)
			return
		}

		counted, _ := ParseCount(input)
		if err := SaveCountRecord(r.Context(), db, auditSvc, sheetID, itemID, counted); err != nil {
			http.Redirect(w, r, countPageURL(sheetID)+"?error="+url.QueryEscape("failed to save count"), http.StatusSeeOther)
			return
		}

		states.Put(sheetID, next)
		http.Redirect(w, r, countPageURL(sheetID)+"?status="+url.QueryEscape("Count saved"), http.StatusSeeOther)
	}
}

// CancelCountCommandHandler closes the modal without saving.
func CancelCountCommandHandler(states *cache.CountScreenCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sheetID := chi.URLParam(r, "id")
		if state, ok := states.Get(sheetID); ok {
			states.Put(sheetID, CancelEditor(state))
		}
		http.Redirect(w, r, countPageURL(sheetID), http.StatusSeeOther)
	}
}
