package counts

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"

	"stocktake/infrastructure/audit"
	"stocktake/infrastructure/sqlite"
	"stocktake/models"
)

func LoadSheet(ctx context.Context, db *sqlite.DB, sheetID string) (models.StockSheet, error) {
	var sheet models.StockSheet
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&sheet).Where("ss.id = ?", sheetID).Scan(ctx)
	})
	return sheet, err
}

// LoadItems returns the sheet's items in insertion order, which drives
// the first-seen order of the location groups.
func LoadItems(ctx context.Context, db *sqlite.DB, sheetID string) ([]models.StockItem, error) {
	items := make([]models.StockItem, 0)
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&items).
			Where("si.sheet_id = ?", sheetID).
			OrderExpr("si.rowid ASC").
			Scan(ctx)
	})
	return items, err
}

// SaveCountRecord commits one count. counted_qty and variance are
// written by a single UPDATE so the pair can never drift apart.
func SaveCountRecord(ctx context.Context, db *sqlite.DB, auditSvc *audit.Service, sheetID, itemID string, counted int64) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		var before models.StockItem
		if err := tx.NewSelect().Model(&before).
			Where("si.id = ? AND si.sheet_id = ?", itemID, sheetID).
			Scan(ctx); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `
UPDATE stock_items
SET counted_qty = ?, variance = ? - system_qty, updated_at = CURRENT_TIMESTAMP
WHERE id = ? AND sheet_id = ?`, counted, counted, itemID, sheetID)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return sql.ErrNoRows
		}

		if auditSvc != nil {
			after := before
			v := counted - before.SystemQty
			c := counted
			after.CountedQty = &c
			after.Variance = &v
			if err := auditSvc.Write(ctx, tx, "count-screen", "item.count", "stock_item", itemID, before, after); err != nil {
				return err
			}
		}
		return nil
	})
}
