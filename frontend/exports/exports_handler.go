package exports

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"stocktake/infrastructure/sqlite"
)

func ExportsPageQueryHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, err := listSheetOptions(r.Context(), db)
		if err != nil {
			http.Error(w, "failed to load sheets", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := ExportsPage(PageData{
			Sheets:  options,
			Message: r.URL.Query().Get("status"),
		}).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render exports page", http.StatusInternalServerError)
			return
		}
	}
}

func SheetPDFHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, rows, ok := loadExport(w, r, db)
		if !ok {
			return
		}
		pdfBytes, err := renderSheetSummaryPDF(summary, rows)
		if err != nil {
			http.Error(w, "failed to render pdf", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename="+summary.ID+".pdf")
		if _, err := w.Write(pdfBytes); err != nil {
			return
		}
		logExportRun(r, db, summary.ID, "sheet_pdf")
	}
}

func SheetXLSXHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, rows, ok := loadExport(w, r, db)
		if !ok {
			return
		}
		xlsxBytes, err := renderCountXLSX(summary, rows)
		if err != nil {
			http.Error(w, "failed to render workbook", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+summary.ID+".xlsx")
		if _, err := w.Write(xlsxBytes); err != nil {
			return
		}
		logExportRun(r, db, summary.ID, "sheet_xlsx")
	}
}

func SheetCSVHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, rows, ok := loadExport(w, r, db)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename="+summary.ID+".csv")
		if err := writeCountCSV(w, summary, rows); err != nil {
			http.Error(w, "failed to export csv", http.StatusInternalServerError)
			return
		}
		logExportRun(r, db, summary.ID, "sheet_csv")
	}
}

func loadExport(w http.ResponseWriter, r *http.Request, db *sqlite.DB) (SheetSummary, []ExportRow, bool) {
	sheetID := chi.URLParam(r, "id")
	summary, err := loadSheetSummary(r.Context(), db, sheetID)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "sheet not found", http.StatusNotFound)
		return SheetSummary{}, nil, false
	}
	if err != nil {
		http.Error(w, "failed to load sheet", http.StatusInternalServerError)
		return SheetSummary{}, nil, false
	}
	rows, err := loadExportRows(r.Context(), db, sheetID)
	if err != nil {
		http.Error(w, "failed to load items", http.StatusInternalServerError)
		return SheetSummary{}, nil, false
	}
	return summary, rows, true
}

func logExportRun(r *http.Request, db *sqlite.DB, sheetID, exportType string) {
	if err := recordExportRun(r.Context(), db, sheetID, exportType); err != nil {
		slog.Error("record export run failed", slog.String("type", exportType), slog.String("sheet_id", sheetID), slog.Any("err", err))
	}
}
