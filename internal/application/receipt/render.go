package receipt

import (
	"fmt"

	"github.com/phamtrung/pos-api/internal/domain/entity"
	"github.com/phamtrung/pos-api/pkg/money"
	"github.com/phamtrung/pos-api/pkg/printer"
)

// visibleTaxGroups drops groups that carry neither base nor tax. A 0% rate
// with a taxed base still shows, with a zero amount.
func visibleTaxGroups(groups []entity.TaxGroup) []entity.TaxGroup {
	out := make([]entity.TaxGroup, 0, len(groups))
	for _, g := range groups {
		if g.Amount == 0 && g.Base == 0 {
			continue
		}
		out = append(out, g)
	}
	return out
}

// RenderDocument converts a receipt view model into an ESC/POS document for
// thermal printing. charWidth is 32 for 58mm paper, 48 for 80mm.
func RenderDocument(r *entity.Receipt, charWidth int) *printer.Document {
	doc := printer.NewDocument(charWidth)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.TaxCode != "" {
		doc.TextF("Tax code: %s", r.Header.TaxCode)
	}

	doc.LineFeed().
		SetBold(true).
		Text(r.Title).
		SetBold(false).
		SetAlign(printer.AlignLeft).
		Separator('-')

	if r.NoData {
		doc.SetAlign(printer.AlignCenter).
			Text("No receipt data").
			SetAlign(printer.AlignLeft).
			FeedLines(3).
			PartialCut()
		return doc
	}

	if r.ReceiptNo != "" {
		doc.KeyValue("Receipt:", r.ReceiptNo)
	}
	if r.Date != "" {
		doc.KeyValue("Date:", r.Date)
	}
	if r.Table != "" {
		doc.KeyValue("Table:", r.Table)
	}
	if r.Cashier != "" {
		doc.KeyValue("Cashier:", r.Cashier)
	}
	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}
	if r.CustomerTax != "" {
		doc.KeyValue("Cust. tax code:", r.CustomerTax)
	}
	if r.PaymentMethod != "" {
		doc.KeyValue("Payment:", r.PaymentMethod)
	}

	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, money.Format(item.UnitPrice), money.Format(item.Amount))
		if item.Discount > 0 {
			doc.DiscountLine("discount", money.Format(item.Discount))
		}
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", money.Format(r.SubTotal))
	if r.DiscountTotal > 0 {
		doc.KeyValue("Discount:", "-"+money.Format(r.DiscountTotal))
	}
	for _, g := range visibleTaxGroups(r.TaxGroups) {
		doc.KeyValue(fmt.Sprintf("VAT %s%%:", trimRate(g.Rate)), money.Format(g.Amount))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", money.Format(r.GrandTotal)).
		SetBold(false)

	if r.LookupCode != "" {
		doc.Separator('-').
			SetAlign(printer.AlignCenter).
			Text("E-invoice lookup").
			QRCode(r.LookupCode).
			SetAlign(printer.AlignLeft)
	}

	doc.Separator('-').
		SetAlign(printer.AlignCenter).
		LineFeed()
	if r.Footer != "" {
		doc.Text(r.Footer)
	} else {
		doc.Text("Thank you, see you again!")
	}
	doc.LineFeed().
		SetAlign(printer.AlignLeft).
		FeedLines(3).
		PartialCut()

	return doc
}

func trimRate(rate float64) string {
	if rate == float64(int64(rate)) {
		return fmt.Sprintf("%d", int64(rate))
	}
	return fmt.Sprintf("%.1f", rate)
}
