package exports

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"

	"stocktake/infrastructure/sqlite"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func sampleSummary() SheetSummary {
	return SheetSummary{
		ID:            "ST-202608300042",
		Name:          "August cycle count",
		Location:      "Warehouse A",
		CreatedBy:     "Jordan",
		Status:        "in_progress",
		ScheduledDate: "30/08/2026",
	}
}

func sampleRows() []ExportRow {
	return []ExportRow{
		{Name: "Pallet Wrap", Category: "Packaging", Location: "Warehouse A", Unit: "rolls", SystemQty: 40, CountedQty: int64Ptr(38), Variance: int64Ptr(-2)},
		{Name: "Labels A4", Category: "Packaging", Location: "Storage Room 1", Unit: "boxes", SystemQty: 12},
	}
}

func TestRenderSheetSummaryPDF(t *testing.T) {
	pdfBytes, err := renderSheetSummaryPDF(sampleSummary(), sampleRows())
	if err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("output is not a pdf")
	}
	if len(pdfBytes) < 1000 {
		t.Fatalf("pdf suspiciously small: %d bytes", len(pdfBytes))
	}
}

func TestRenderSheetSummaryPDFEmptySheet(t *testing.T) {
	pdfBytes, err := renderSheetSummaryPDF(sampleSummary(), nil)
	if err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("output is not a pdf")
	}
}

func TestRenderCountXLSX(t *testing.T) {
	xlsxBytes, err := renderCountXLSX(sampleSummary(), sampleRows())
	if err != nil {
		t.Fatalf("render xlsx: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(xlsxBytes))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue("Count Sheet", "B1"); got != "ST-202608300042" {
		t.Fatalf("expected sheet code in B1, got %q", got)
	}
	if got, _ := f.GetCellValue("Count Sheet", "A9"); got != "Pallet Wrap" {
		t.Fatalf("expected first item row, got %q", got)
	}
	if got, _ := f.GetCellValue("Count Sheet", "F9"); got != "38" {
		t.Fatalf("expected counted qty 38, got %q", got)
	}
	if got, _ := f.GetCellValue("Count Sheet", "F10"); got != "" {
		t.Fatalf("uncounted row must leave the counted cell empty, got %q", got)
	}
}

func TestWriteCountCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := writeCountCSV(&buf, sampleSummary(), sampleRows()); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "sheet_id,item,category,location,unit,system_qty,counted_qty,variance" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "ST-202608300042,Pallet Wrap,Packaging,Warehouse A,rolls,40,38,-2" {
		t.Fatalf("unexpected counted row %q", lines[1])
	}
	if lines[2] != "ST-202608300042,Labels A4,Packaging,Storage Room 1,boxes,12,," {
		t.Fatalf("unexpected uncounted row %q", lines[2])
	}
}

func TestSheetPDFHandlerUnknownSheet(t *testing.T) {
	name := strings.ToLower(strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.OpenDB(name)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	r := chi.NewRouter()
	r.Get("/take/exports/sheet/{id}.pdf", SheetPDFHandler(db))

	req := httptest.NewRequest(http.MethodGet, "/take/exports/sheet/ST-000000000000.pdf", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
