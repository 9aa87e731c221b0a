package sheets

import (
	"context"

	"github.com/uptrace/bun"

	"stocktake/infrastructure/sqlite"
	"stocktake/models"
)

// ListSheets returns every sheet, newest first.
func ListSheets(ctx context.Context, db *sqlite.DB) ([]models.StockSheet, error) {
	sheets := make([]models.StockSheet, 0)
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&sheets).
			OrderExpr("ss.created_at DESC, ss.id DESC").
			Scan(ctx)
	})
	return sheets, err
}
