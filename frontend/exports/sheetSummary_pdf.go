package exports

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strconv"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"
)

// renderSheetSummaryPDF produces a printable count sheet: header with
// the sheet code as a scannable barcode, then one line per item with a
// blank counted column for uncounted rows.
func renderSheetSummaryPDF(summary SheetSummary, rows []ExportRow) ([]byte, error) {
	barcodePNG, err := renderCode128PNG(summary.ID, 1200, 220)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Stock Take "+summary.ID, false)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	margin := 14.0
	usable := pageW - (2 * margin)

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, summary.Name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Location: "+summary.Location, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Created by: "+summary.CreatedBy, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Scheduled: "+summary.ScheduledDate, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Status: "+summary.Status, "", 1, "L", false, 0, "")

	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("sheet-barcode-"+summary.ID, opt, bytes.NewReader(barcodePNG))
	imgW := 90.0
	imgH := 18.0
	pdf.ImageOptions("sheet-barcode-"+summary.ID, pageW-margin-imgW, 16, imgW, imgH, false, opt, 0, "")
	pdf.SetXY(pageW-margin-imgW, 16+imgH)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(imgW, 6, summary.ID, "", 1, "C", false, 0, "")

	pdf.Ln(8)

	colName := usable * 0.34
	colCategory := usable * 0.16
	colLocation := usable * 0.20
	colSystem := usable * 0.10
	colCounted := usable * 0.10
	colVariance := usable - colName - colCategory - colLocation - colSystem - colCounted

	writeHeaderRow := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(235, 235, 235)
		pdf.SetX(margin)
		pdf.CellFormat(colName, 7, "Item", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colCategory, 7, "Category", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colLocation, 7, "Location", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colSystem, 7, "System", "1", 0, "R", true, 0, "")
		pdf.CellFormat(colCounted, 7, "Counted", "1", 0, "R", true, 0, "")
		pdf.CellFormat(colVariance, 7, "Variance", "1", 1, "R", true, 0, "")
	}
	writeHeaderRow()

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range rows {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeHeaderRow()
			pdf.SetFont("Helvetica", "", 9)
		}
		pdf.SetX(margin)
		pdf.CellFormat(colName, 7, r.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colCategory, 7, r.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colLocation, 7, r.Location, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colSystem, 7, strconv.FormatInt(r.SystemQty, 10)+" "+r.Unit, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colCounted, 7, optionalQty(r.CountedQty), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colVariance, 7, signedQty(r.Variance), "1", 1, "R", false, 0, "")
	}

	if len(rows) == 0 {
		pdf.SetX(margin)
		pdf.CellFormat(usable, 7, "No items on this sheet.", "1", 1, "C", false, 0, "")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func signedQty(v *int64) string {
	if v == nil {
		return ""
	}
	if *v > 0 {
		return fmt.Sprintf("+%d", *v)
	}
	return strconv.FormatInt(*v, 10)
}

func renderCode128PNG(value string, width, height int) ([]byte, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := png.Encode(&out, toNRGBA(scaled)); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
