package createsheet

import (
	"context"

	"github.com/uptrace/bun"

	"stocktake/infrastructure/audit"
	"stocktake/infrastructure/sqlite"
	"stocktake/models"
)

// InsertSheet stores a freshly created sheet and audits the creation.
func InsertSheet(ctx context.Context, db *sqlite.DB, auditSvc *audit.Service, sheet models.StockSheet) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&sheet).Exec(ctx); err != nil {
			return err
		}
		if auditSvc != nil {
			if err := auditSvc.Write(ctx, tx, sheet.CreatedBy, "sheet.create", "stock_sheet", sheet.ID, nil, sheet); err != nil {
				return err
			}
		}
		return nil
	})
}
