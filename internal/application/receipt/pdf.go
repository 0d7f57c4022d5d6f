package receipt

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/phamtrung/pos-api/internal/domain/entity"
	"github.com/phamtrung/pos-api/pkg/money"
)

// 80mm thermal roll. Height grows with content; gofpdf only needs an upper
// bound for the page, so a generous fixed height is fine.
const (
	pdfPageWidth  = 80.0
	pdfPageHeight = 297.0
	pdfMargin     = 4.0
)

// RenderPDF lays the receipt out on an 80mm page and returns the document
// bytes. When the receipt carries a lookup code, a QR code is embedded above
// the footer.
func RenderPDF(r *entity.Receipt) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: pdfPageWidth, Ht: pdfPageHeight},
	})
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	usable := pdfPageWidth - 2*pdfMargin

	pdf.SetFont("Courier", "B", 12)
	pdf.CellFormat(usable, 5, r.Header.StoreName, "", 1, "C", false, 0, "")
	pdf.SetFont("Courier", "", 8)
	if r.Header.Address != "" {
		pdf.CellFormat(usable, 4, r.Header.Address, "", 1, "C", false, 0, "")
	}
	if r.Header.Phone != "" {
		pdf.CellFormat(usable, 4, r.Header.Phone, "", 1, "C", false, 0, "")
	}
	if r.Header.TaxCode != "" {
		pdf.CellFormat(usable, 4, "Tax code: "+r.Header.TaxCode, "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Courier", "B", 10)
	pdf.CellFormat(usable, 6, r.Title, "", 1, "C", false, 0, "")
	pdfRule(pdf, usable)

	if r.NoData {
		pdf.SetFont("Courier", "", 9)
		pdf.CellFormat(usable, 5, "No receipt data", "", 1, "C", false, 0, "")
		return pdfOutput(pdf)
	}

	pdf.SetFont("Courier", "", 8)
	pdfKeyValue(pdf, usable, "Receipt:", r.ReceiptNo)
	pdfKeyValue(pdf, usable, "Date:", r.Date)
	pdfKeyValue(pdf, usable, "Table:", r.Table)
	pdfKeyValue(pdf, usable, "Cashier:", r.Cashier)
	pdfKeyValue(pdf, usable, "Customer:", r.Customer)
	pdfKeyValue(pdf, usable, "Payment:", r.PaymentMethod)
	pdfRule(pdf, usable)

	for _, it := range r.Items {
		pdf.CellFormat(usable, 4, it.Name, "", 1, "L", false, 0, "")
		qty := fmt.Sprintf("  %d x %s", it.Quantity, money.Format(it.UnitPrice))
		pdf.CellFormat(usable*0.6, 4, qty, "", 0, "L", false, 0, "")
		pdf.CellFormat(usable*0.4, 4, money.Format(it.Amount), "", 1, "R", false, 0, "")
		if it.Discount > 0 {
			pdf.CellFormat(usable*0.6, 4, "  discount", "", 0, "L", false, 0, "")
			pdf.CellFormat(usable*0.4, 4, "-"+money.Format(it.Discount), "", 1, "R", false, 0, "")
		}
	}
	pdfRule(pdf, usable)

	pdfTotal(pdf, usable, "Subtotal:", money.Format(r.SubTotal))
	if r.DiscountTotal > 0 {
		pdfTotal(pdf, usable, "Discount:", "-"+money.Format(r.DiscountTotal))
	}
	for _, g := range visibleTaxGroups(r.TaxGroups) {
		pdfTotal(pdf, usable, fmt.Sprintf("VAT %s%%:", trimRate(g.Rate)), money.Format(g.Amount))
	}
	pdf.SetFont("Courier", "B", 10)
	pdfTotal(pdf, usable, "TOTAL:", money.Format(r.GrandTotal))
	pdf.SetFont("Courier", "", 8)
	pdfRule(pdf, usable)

	if r.LookupCode != "" {
		qrPNG, err := qrcode.Encode(r.LookupCode, qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("receipt: qr encode failed: %w", err)
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("lookup-qr", opts, bytes.NewReader(qrPNG))
		x := (pdfPageWidth - 28) / 2
		pdf.ImageOptions("lookup-qr", x, pdf.GetY()+2, 28, 28, false, opts, 0, "")
		pdf.SetY(pdf.GetY() + 32)
		pdf.CellFormat(usable, 4, "Scan for e-invoice lookup", "", 1, "C", false, 0, "")
	}

	footer := r.Footer
	if footer == "" {
		footer = "Thank you, see you again!"
	}
	pdf.CellFormat(usable, 5, footer, "", 1, "C", false, 0, "")

	return pdfOutput(pdf)
}

func pdfRule(pdf *gofpdf.Fpdf, usable float64) {
	y := pdf.GetY() + 1
	pdf.SetDashPattern([]float64{1, 1}, 0)
	pdf.Line(pdfMargin, y, pdfMargin+usable, y)
	pdf.SetDashPattern([]float64{}, 0)
	pdf.SetY(y + 1)
}

func pdfKeyValue(pdf *gofpdf.Fpdf, usable float64, key, value string) {
	if value == "" {
		return
	}
	pdf.CellFormat(usable*0.35, 4, key, "", 0, "L", false, 0, "")
	pdf.CellFormat(usable*0.65, 4, value, "", 1, "R", false, 0, "")
}

func pdfTotal(pdf *gofpdf.Fpdf, usable float64, key, value string) {
	pdf.CellFormat(usable*0.5, 5, key, "", 0, "L", false, 0, "")
	pdf.CellFormat(usable*0.5, 5, value, "", 1, "R", false, 0, "")
}

func pdfOutput(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("receipt: pdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}
