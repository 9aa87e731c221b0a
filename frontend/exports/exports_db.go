package exports

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/uptrace/bun"

	"stocktake/infrastructure/sqlite"
)

func listSheetOptions(ctx context.Context, db *sqlite.DB) ([]SheetOption, error) {
	options := make([]SheetOption, 0)
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`
SELECT s.id, s.name, s.location, s.status,
       (SELECT COUNT(*) FROM stock_items si WHERE si.sheet_id = s.id) AS item_count,
       (SELECT COUNT(*) FROM stock_items si WHERE si.sheet_id = s.id AND si.counted_qty IS NOT NULL) AS counted
FROM stock_sheets s
ORDER BY s.created_at DESC, s.id DESC`).Scan(ctx, &options)
	})
	if err != nil {
		return nil, err
	}
	return options, nil
}

func loadSheetSummary(ctx context.Context, db *sqlite.DB, sheetID string) (SheetSummary, error) {
	var summary SheetSummary
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`
SELECT id, name, description, location, created_by, status,
       strftime('%d/%m/%Y', scheduled_date) AS scheduled_date
FROM stock_sheets
WHERE id = ?`, sheetID).Scan(ctx, &summary)
	})
	if err != nil {
		return SheetSummary{}, err
	}
	return summary, nil
}

func loadExportRows(ctx context.Context, db *sqlite.DB, sheetID string) ([]ExportRow, error) {
	rows := make([]ExportRow, 0)
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`
SELECT name, category, location, unit, system_qty, counted_qty, variance
FROM stock_items
WHERE sheet_id = ?
ORDER BY location ASC, rowid ASC`, sheetID).Scan(ctx, &rows)
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func writeCountCSV(w io.Writer, summary SheetSummary, rows []ExportRow) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"sheet_id", "item", "category", "location", "unit", "system_qty", "counted_qty", "variance"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			summary.ID,
			r.Name,
			r.Category,
			r.Location,
			r.Unit,
			strconv.FormatInt(r.SystemQty, 10),
			optionalQty(r.CountedQty),
			optionalQty(r.Variance),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Error()
}

func optionalQty(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func recordExportRun(ctx context.Context, db *sqlite.DB, sheetID, exportType string) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO export_runs (sheet_id, export_type, created_at)
VALUES (?, ?, CURRENT_TIMESTAMP)`, sheetID, exportType)
		return err
	})
}
