package receipt

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/phamtrung/pos-api/internal/domain/entity"
)

func boolPtr(v bool) *bool { return &v }

func sampleOrder() *entity.Order {
	return &entity.Order{
		ReceiptNo:     "RCP-A1B2C3D4",
		OrderDate:     time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC),
		PaymentMethod: "Cash",
		Total:         108000,
		Items: []entity.OrderItem{
			{ProductName: "Pho bo", Quantity: 2, UnitPrice: 50000, TaxRate: 8},
		},
	}
}

func TestBuildOrderWinsOverCart(t *testing.T) {
	r := Build(Input{
		Order: sampleOrder(),
		CartItems: []CartItem{
			{Name: "stale cart line", Quantity: 9, UnitPrice: 99999},
		},
		CartTotal: 999999,
	})

	if r.NoData {
		t.Fatal("got placeholder, want order receipt")
	}
	if r.ReceiptNo != "RCP-A1B2C3D4" {
		t.Errorf("receipt no = %q", r.ReceiptNo)
	}
	if r.GrandTotal != 108000 {
		t.Errorf("grand total = %d, want the stored order total 108000", r.GrandTotal)
	}
	if len(r.Items) != 1 || r.Items[0].Name != "Pho bo" {
		t.Errorf("items came from the cart, not the order: %+v", r.Items)
	}
	if r.Date != "15/03/2026 18:30" {
		t.Errorf("date = %q", r.Date)
	}
}

func TestBuildFromCart(t *testing.T) {
	r := Build(Input{
		CartItems: []CartItem{
			{Name: "Pho bo", Quantity: 2, UnitPrice: 50000, TaxRate: 8},
			{Name: "Com ga", Quantity: 1, UnitPrice: 30000, TaxRate: 8},
		},
		CartDiscount: 10000,
		CartTotal:    120000,
		IsPreview:    true,
	})

	if r.NoData {
		t.Fatal("got placeholder, want cart receipt")
	}
	if r.SubTotal != 130000 {
		t.Errorf("subtotal = %d, want 130000", r.SubTotal)
	}
	if r.DiscountTotal != 10000 {
		t.Errorf("discount = %d, want 10000", r.DiscountTotal)
	}
	if r.GrandTotal != 120000 {
		t.Errorf("grand total = %d, want the supplied cart total", r.GrandTotal)
	}
}

func TestBuildPlaceholder(t *testing.T) {
	cases := []struct {
		name string
		in   Input
	}{
		{"empty input", Input{}},
		{"cart items but zero total", Input{
			CartItems: []CartItem{{Name: "a", Quantity: 1, UnitPrice: 1000}},
		}},
		{"total but no items", Input{CartTotal: 50000}},
	}
	for _, tc := range cases {
		r := Build(tc.in)
		if !r.NoData {
			t.Errorf("%s: expected placeholder", tc.name)
		}
		if r.Items == nil || r.TaxGroups == nil {
			t.Errorf("%s: placeholder slices must be non-nil", tc.name)
		}
	}
}

func TestSelectTitle(t *testing.T) {
	cases := []struct {
		name    string
		isTitle *bool
		preview bool
		want    string
	}{
		{"default", nil, false, TitlePaymentInvoice},
		{"default preview", nil, true, TitlePaymentInvoice},
		{"explicit true", boolPtr(true), true, TitlePaymentInvoice},
		{"opted out preview", boolPtr(false), true, TitlePreview},
		{"opted out final", boolPtr(false), false, TitleReceipt},
	}
	for _, tc := range cases {
		r := Build(Input{Order: sampleOrder(), IsTitle: tc.isTitle, IsPreview: tc.preview})
		if r.Title != tc.want {
			t.Errorf("%s: title = %q, want %q", tc.name, r.Title, tc.want)
		}
	}
}

func TestTransfer(t *testing.T) {
	preview := Build(Input{
		CartItems: []CartItem{{Name: "Pho bo", Quantity: 1, UnitPrice: 50000, TaxRate: 8}},
		CartTotal: 54000,
		IsPreview: true,
	})
	xfer := Transfer(preview)
	if xfer == nil {
		t.Fatal("preview transfer is nil")
	}
	if xfer.GrandTotal != 54000 {
		t.Errorf("transfer grand total = %d", xfer.GrandTotal)
	}
	if xfer.TaxTotal != 4000 {
		t.Errorf("transfer tax total = %d, want 4000", xfer.TaxTotal)
	}

	if got := Transfer(Build(Input{Order: sampleOrder()})); got != nil {
		t.Error("final receipt must not produce a transfer")
	}
	if got := Transfer(Build(Input{IsPreview: true})); got != nil {
		t.Error("placeholder must not produce a transfer")
	}
	if got := Transfer(nil); got != nil {
		t.Error("nil receipt must not produce a transfer")
	}
}

func TestCartItemUnmarshalCoercesPrice(t *testing.T) {
	payload := `[
		{"name":"Pho bo","quantity":2,"unit_price":"150.000"},
		{"name":"Tra da","quantity":1,"unit_price":5000},
		{"name":"Com rang","quantity":1,"unit_price":null}
	]`
	var items []CartItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		t.Fatal(err)
	}
	if items[0].UnitPrice != 150000 {
		t.Errorf("grouped string price = %d, want 150000", items[0].UnitPrice)
	}
	if items[1].UnitPrice != 5000 {
		t.Errorf("numeric price = %d, want 5000", items[1].UnitPrice)
	}
	if items[2].UnitPrice != 0 {
		t.Errorf("null price = %d, want 0", items[2].UnitPrice)
	}
	if items[0].Quantity != 2 || items[0].Name != "Pho bo" {
		t.Errorf("other fields mangled: %+v", items[0])
	}
}
