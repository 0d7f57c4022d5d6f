package receipt

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/domain/entity"
	"github.com/phamtrung/pos-api/pkg/money"
)

// Receipt titles. The payment-invoice title is forced whenever the caller
// has not explicitly opted out via IsTitle.
const (
	TitlePaymentInvoice = "PAYMENT INVOICE"
	TitlePreview        = "RECEIPT PREVIEW"
	TitleReceipt        = "RECEIPT"
)

// CartItem is a transient line supplied by a terminal before checkout.
type CartItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unit_price"`
	TaxRate   float64   `json:"tax_rate"`
}

// UnmarshalJSON accepts unit_price as a number or a string with grouping
// separators; terminals serialize amounts inconsistently.
func (c *CartItem) UnmarshalJSON(data []byte) error {
	type cartItem CartItem
	aux := struct {
		*cartItem
		UnitPrice interface{} `json:"unit_price"`
	}{cartItem: (*cartItem)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.UnitPrice = money.Coerce(aux.UnitPrice)
	return nil
}

// Input selects the data source and presentation flags for one build.
// A non-nil Order is always authoritative; the cart path is only taken when
// no order is supplied. IsPreview is the caller's explicit intent and wins
// over anything the data might imply.
type Input struct {
	Order *entity.Order

	CartItems    []CartItem
	CartDiscount int64
	CartTotal    int64

	// PriceIncludeTax applies to the cart path; the order path reads the
	// flag stored on the order.
	PriceIncludeTax bool

	IsPreview bool
	// IsTitle defaults to true: the "payment invoice" title is used
	// regardless of preview state. Only an explicit false falls back to the
	// preview/final-dependent title.
	IsTitle *bool

	Header  entity.ReceiptHeader
	Footer  string
	Cashier string
}

// Build produces the receipt view model. It never fails: with no usable
// data it returns a placeholder receipt so the caller always has something
// to show.
func Build(in Input) *entity.Receipt {
	r := &entity.Receipt{
		Header:    in.Header,
		Footer:    in.Footer,
		Cashier:   in.Cashier,
		Title:     selectTitle(in),
		IsPreview: in.IsPreview,
	}

	switch {
	case in.Order != nil:
		buildFromOrder(r, in.Order)
	case len(in.CartItems) > 0 && in.CartTotal > 0:
		buildFromCart(r, in)
	default:
		r.NoData = true
		r.Items = []entity.ReceiptItem{}
		r.TaxGroups = []entity.TaxGroup{}
	}

	return r
}

func selectTitle(in Input) string {
	if in.IsTitle == nil || *in.IsTitle {
		return TitlePaymentInvoice
	}
	if in.IsPreview {
		return TitlePreview
	}
	return TitleReceipt
}

func buildFromOrder(r *entity.Receipt, order *entity.Order) {
	lines := make([]Line, len(order.Items))
	for i, it := range order.Items {
		lines[i] = Line{
			Name:      it.ProductName,
			SKU:       it.SKU,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Discount:  it.Discount,
			TaxRate:   it.TaxRate,
		}
	}

	alloc := Allocate(Params{
		Lines:              lines,
		PersistedDiscounts: true,
		PriceIncludeTax:    order.PriceIncludeTax,
	})

	r.ReceiptNo = order.ReceiptNo
	r.Date = order.OrderDate.Format("02/01/2006 15:04")
	r.Customer = order.CustomerName
	r.CustomerTax = order.CustomerTaxCode
	r.PaymentMethod = order.PaymentMethod
	if order.Table != nil {
		r.Table = order.Table.Name
	}

	r.Items = alloc.Items
	r.SubTotal = alloc.SubTotal
	r.DiscountTotal = alloc.DiscountTotal
	r.TaxGroups = alloc.Groups
	// The stored total is fiscal truth; the breakdown above is display only
	// and must never override it.
	r.GrandTotal = order.Total
}

func buildFromCart(r *entity.Receipt, in Input) {
	lines := make([]Line, len(in.CartItems))
	for i, it := range in.CartItems {
		lines[i] = Line{
			Name:      it.Name,
			SKU:       it.SKU,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			TaxRate:   it.TaxRate,
		}
	}

	alloc := Allocate(Params{
		Lines:           lines,
		OrderDiscount:   in.CartDiscount,
		PriceIncludeTax: in.PriceIncludeTax,
	})

	r.Date = time.Now().Format("02/01/2006 15:04")
	r.Items = alloc.Items
	r.SubTotal = alloc.SubTotal
	r.DiscountTotal = alloc.DiscountTotal
	r.TaxGroups = alloc.Groups
	r.GrandTotal = in.CartTotal
}

// CheckoutTransfer packages a previewed cart plus its exact computed totals
// for order creation. Confirming a preview hands this to the order service.
type CheckoutTransfer struct {
	Items         []entity.ReceiptItem `json:"items"`
	SubTotal      int64                `json:"subtotal"`
	DiscountTotal int64                `json:"discount_total"`
	TaxTotal      int64                `json:"tax_total"`
	GrandTotal    int64                `json:"grand_total"`
}

// Transfer extracts the checkout payload from a preview receipt. Returns nil
// for final or placeholder receipts, which have nothing to confirm.
func Transfer(r *entity.Receipt) *CheckoutTransfer {
	if r == nil || !r.IsPreview || r.NoData {
		return nil
	}
	var tax int64
	for _, g := range r.TaxGroups {
		tax += g.Amount
	}
	return &CheckoutTransfer{
		Items:         r.Items,
		SubTotal:      r.SubTotal,
		DiscountTotal: r.DiscountTotal,
		TaxTotal:      tax,
		GrandTotal:    r.GrandTotal,
	}
}
