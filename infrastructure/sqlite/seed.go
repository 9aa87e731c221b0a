package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"stocktake/models"
)

func ptr(v int64) *int64 { return &v }

// SeedDemoData loads the mock sheets and line items the app ships with.
// Totals and discrepancy figures on the sheets are illustrative and are
// not derived from the item rows.
func SeedDemoData(ctx context.Context, db *DB) error {
	now := time.Now()
	day := 24 * time.Hour

	sheets := []models.StockSheet{
		{
			ID:            "ST-202608250001",
			Name:          "August Full Count",
			Description:   "Month-end wall-to-wall count",
			Location:      "Warehouse A",
			CreatedBy:     "Maria Chen",
			Status:        models.SheetStatusInProgress,
			ScheduledDate: now.Add(-2 * day),
			TotalItems:    48,
			Discrepancies: 3,
		},
		{
			ID:            "ST-202608270014",
			Name:          "Cold Storage Spot Check",
			Description:   "Flagged variances from last cycle",
			Location:      "Storage Room 1",
			CreatedBy:     "Tom Okafor",
			Status:        models.SheetStatusDraft,
			ScheduledDate: now.Add(1 * day),
			TotalItems:    12,
			Discrepancies: 0,
		},
		{
			ID:            "ST-202608180342",
			Name:          "Packaging Cycle Count",
			Description:   "",
			Location:      "Warehouse B",
			CreatedBy:     "Maria Chen",
			Status:        models.SheetStatusCompleted,
			ScheduledDate: now.Add(-9 * day),
			TotalItems:    25,
			Discrepancies: 1,
		},
	}

	type seedItem struct {
		category  string
		name      string
		location  string
		systemQty int64
		counted   *int64
		unit      string
	}

	itemsBySheet := map[string][]seedItem{
		"ST-202608250001": {
			{"Beverages", "Sparkling Water 500ml", "Warehouse A", 120, nil, "btl"},
			{"Beverages", "Cold Brew Concentrate 1L", "Warehouse A", 36, ptr(36), "btl"},
			{"Dry Goods", "Basmati Rice 5kg", "Warehouse A", 80, ptr(78), "bag"},
			{"Dry Goods", "Plain Flour 10kg", "Warehouse B", 45, nil, "bag"},
			{"Packaging", "Carton Box Medium", "Warehouse B", 300, ptr(295), "pcs"},
			{"Chilled", "Butter Unsalted 250g", "Storage Room 1", 64, nil, "pcs"},
			{"Chilled", "Cheddar Block 2kg", "Storage Room 1", 22, ptr(24), "pcs"},
			{"Cleaning", "Degreaser 5L", "Storage Room 2", 18, nil, "can"},
		},
		"ST-202608270014": {
			{"Chilled", "Yoghurt Tub 1kg", "Storage Room 1", 40, nil, "pcs"},
			{"Chilled", "Double Cream 1L", "Storage Room 1", 28, nil, "btl"},
			{"Frozen", "Berry Mix 2.5kg", "Storage Room 1", 15, nil, "bag"},
		},
		"ST-202608180342": {
			{"Packaging", "Paper Bag Large", "Warehouse B", 500, ptr(500), "pcs"},
			{"Packaging", "Label Roll 40mm", "Warehouse B", 60, ptr(59), "roll"},
		},
	}

	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		for i := range sheets {
			if _, err := tx.NewInsert().Model(&sheets[i]).Exec(ctx); err != nil {
				return err
			}
		}
		for sheetID, rows := range itemsBySheet {
			for _, row := range rows {
				item := models.StockItem{
					ID:        uuid.NewString(),
					SheetID:   sheetID,
					Category:  row.category,
					Name:      row.name,
					Location:  row.location,
					SystemQty: row.systemQty,
					Unit:      row.unit,
				}
				if row.counted != nil {
					c := *row.counted
					v := c - row.systemQty
					item.CountedQty = &c
					item.Variance = &v
				}
				if _, err := tx.NewInsert().Model(&item).Exec(ctx); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
