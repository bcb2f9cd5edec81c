package intake

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"

	"pharmadesk/models"
)

// renderHistoryPDF lays out the intake history as a printable document.
// Each copy carries a code 128 reference so the paper printout can be
// traced back to the moment it was generated.
func renderHistoryPDF(rows []models.HistoryRow, generatedAt time.Time) ([]byte, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no history rows to render")
	}

	reference := "INTAKE-" + generatedAt.UTC().Format("20060102150405")
	barcodePNG, err := renderCode128PNG(reference, 1200, 220)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Intake History", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Intake History", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated: "+generatedAt.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	colW := []float64{24, 48, 36, 16, 22, 20, 24}
	headers := []string{"Date", "Medicine", "Supplier", "Qty", "Remaining", "Cost", "Expiry"}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(colW[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		cells := []string{
			displayDate(row.IntakeDate),
			row.MedicineName,
			row.SupplierName,
			fmt.Sprintf("%d", row.Quantity),
			fmt.Sprintf("%d", row.Remaining),
			fmt.Sprintf("%.2f", row.UnitCost),
			displayDate(row.ExpiryDate),
		}
		for i, cell := range cells {
			pdf.CellFormat(colW[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("intake-history-ref", opt, bytes.NewReader(barcodePNG))
	pdf.ImageOptions("intake-history-ref", pdf.GetX(), pdf.GetY(), 80, 16, false, opt, 0, "")
	pdf.SetY(pdf.GetY() + 18)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(80, 5, reference, "", 1, "C", false, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
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
	normalized := toNRGBA(scaled)
	var barcodePNG bytes.Buffer
	if err := png.Encode(&barcodePNG, normalized); err != nil {
		return nil, err
	}
	return barcodePNG.Bytes(), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
