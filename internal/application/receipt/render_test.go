package receipt

import (
	"strings"
	"testing"

	"github.com/phamtrung/pos-api/internal/domain/entity"
)

func finalReceipt() *entity.Receipt {
	return Build(Input{
		Order: sampleOrder(),
		Header: entity.ReceiptHeader{
			StoreName: "Quan An Ngon",
			Address:   "18 Phan Boi Chau, Hanoi",
			Phone:     "024 3942 8162",
		},
		Cashier: "Linh",
	})
}

func TestRenderHTMLFinal(t *testing.T) {
	out, err := RenderHTML(finalReceipt(), HTMLOptions{AutoPrint: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Quan An Ngon",
		"RCP-A1B2C3D4",
		"108.000",
		"window.print()",
		"PAYMENT INVOICE",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("html output missing %q", want)
		}
	}
}

func TestRenderHTMLPreviewNeverAutoPrints(t *testing.T) {
	r := Build(Input{
		CartItems: []CartItem{{Name: "Pho bo", Quantity: 1, UnitPrice: 50000}},
		CartTotal: 50000,
		IsPreview: true,
	})
	out, err := RenderHTML(r, HTMLOptions{AutoPrint: true})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "window.print()") {
		t.Error("preview output contains an auto-print script")
	}
}

func TestRenderHTMLPlaceholder(t *testing.T) {
	out, err := RenderHTML(Build(Input{}), HTMLOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No receipt data") {
		t.Error("placeholder output missing the no-data message")
	}
}

func TestRenderDocumentContainsItems(t *testing.T) {
	doc := RenderDocument(finalReceipt(), 42)
	text := doc.PlainText()
	for _, want := range []string{"Pho bo", "2 x 50.000", "100.000", "TOTAL"} {
		if !strings.Contains(text, want) {
			t.Errorf("escpos plain text missing %q", want)
		}
	}
}

func TestRenderPDFProducesDocument(t *testing.T) {
	r := finalReceipt()
	r.LookupCode = "https://lookup.example/inv/RCP-A1B2C3D4"
	out, err := RenderPDF(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) == 0 || !strings.HasPrefix(string(out[:5]), "%PDF-") {
		t.Error("output is not a PDF document")
	}
}

func TestVisibleTaxGroupsKeepsZeroRateWithBase(t *testing.T) {
	groups := []entity.TaxGroup{
		{Rate: 8, Base: 100000, Amount: 8000},
		{Rate: 0, Base: 50000, Amount: 0},
		{Rate: 10, Base: 0, Amount: 0},
	}
	got := visibleTaxGroups(groups)
	if len(got) != 2 {
		t.Fatalf("expected 2 visible groups, got %d: %+v", len(got), got)
	}
	if got[1].Rate != 0 || got[1].Base != 50000 {
		t.Errorf("zero-rate group with a taxed base was dropped: %+v", got)
	}
}

func TestRenderDocumentShowsZeroRateGroup(t *testing.T) {
	r := &entity.Receipt{
		Header:   entity.ReceiptHeader{StoreName: "Quan An Ngon"},
		Title:    TitleReceipt,
		Items:    []entity.ReceiptItem{{Name: "Tra da", Quantity: 1, UnitPrice: 5000, Amount: 5000}},
		SubTotal: 5000,
		TaxGroups: []entity.TaxGroup{
			{Rate: 0, Base: 5000, Amount: 0},
			{Rate: 8, Base: 0, Amount: 0},
		},
		GrandTotal: 5000,
	}
	text := RenderDocument(r, 42).PlainText()
	if !strings.Contains(text, "VAT 0%:") {
		t.Error("zero-rate group with a taxed base missing from document output")
	}
	if strings.Contains(text, "VAT 8%:") {
		t.Error("empty tax group rendered in document output")
	}
}
