package exports

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// renderCountXLSX produces a workbook with one worksheet per export:
// header block, column titles, then the item rows. Counted cells stay
// empty for rows without a recorded count so the file doubles as a
// paper backup form.
func renderCountXLSX(summary SheetSummary, rows []ExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Count Sheet"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headerBlock := [][2]string{
		{"Sheet", summary.ID},
		{"Name", summary.Name},
		{"Location", summary.Location},
		{"Created by", summary.CreatedBy},
		{"Scheduled", summary.ScheduledDate},
		{"Status", summary.Status},
	}
	for i, pair := range headerBlock {
		row := i + 1
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), pair[0]); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), pair[1]); err != nil {
			return nil, err
		}
	}

	titleRow := len(headerBlock) + 2
	titles := []string{"Item", "Category", "Location", "Unit", "System Qty", "Counted Qty", "Variance"}
	for i, title := range titles {
		cell, err := excelize.CoordinatesToCellName(i+1, titleRow)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return nil, err
		}
	}

	for i, r := range rows {
		row := titleRow + 1 + i
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.Name); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Category); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.Location); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.Unit); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.SystemQty); err != nil {
			return nil, err
		}
		if r.CountedQty != nil {
			if err := f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), *r.CountedQty); err != nil {
				return nil, err
			}
		}
		if r.Variance != nil {
			if err := f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), *r.Variance); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 32); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "B", "D", 16); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "E", "G", 12); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := f.Write(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
