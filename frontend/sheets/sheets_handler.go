package sheets

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"stocktake/infrastructure/cache"
	"stocktake/infrastructure/sqlite"
)

// SheetsPageQueryHandler renders the sheet list tab.
func SheetsPageQueryHandler(db *sqlite.DB, listState *cache.SheetListCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sheets, err := ListSheets(r.Context(), db)
		if err != nil {
			http.Error(w, "failed to load sheets", http.StatusInternalServerError)
			return
		}

		state := listState.Get()
		cards := make([]SheetCard, 0, len(sheets))
		for _, sheet := range sheets {
			cards = append(cards, SheetCard{Sheet: sheet, Expanded: state.ExpandedSheets[sheet.ID]})
		}

		data := PageData{Cards: cards}
		if msg := strings.TrimSpace(r.URL.Query().Get("status")); msg != "" {
			data.Message = msg
		}
		if msg := strings.TrimSpace(r.URL.Query().Get("error")); msg != "" {
			data.Message = msg
			data.IsError = true
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := SheetsPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render sheet list", http.StatusInternalServerError)
			return
		}
	}
}

// ToggleSheetCommandHandler expands or collapses one sheet card.
func ToggleSheetCommandHandler(listState *cache.SheetListCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sheetID := chi.URLParam(r, "id")
		listState.Put(ToggleSheet(listState.Get(), sheetID))
		http.Redirect(w, r, "/take/sheets", http.StatusSeeOther)
	}
}
