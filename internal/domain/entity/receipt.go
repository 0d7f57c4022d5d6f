package entity

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	TaxCode   string `json:"tax_code,omitempty"`
}

// ReceiptItem is a single line on a receipt with its allocated discount and
// computed tax. Amount is the line total after discount (and, for
// tax-exclusive pricing, before tax).
type ReceiptItem struct {
	Name      string  `json:"name"`
	SKU       string  `json:"sku,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice int64   `json:"unit_price"`
	Discount  int64   `json:"discount"`
	TaxRate   float64 `json:"tax_rate"`
	Tax       int64   `json:"tax"`
	Amount    int64   `json:"amount"`
}

// TaxGroup aggregates the tax of all items sharing one rate. Groups are
// ordered by rate descending for display.
type TaxGroup struct {
	Rate   float64 `json:"rate"`
	Base   int64   `json:"base"`
	Amount int64   `json:"amount"`
}

// Receipt is the view model for a rendered receipt. It is not persisted;
// it is rebuilt from the latest order/cart data on every render.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	Title         string        `json:"title"`
	ReceiptNo     string        `json:"receipt_no,omitempty"`
	Date          string        `json:"date,omitempty"`
	Cashier       string        `json:"cashier,omitempty"`
	Customer      string        `json:"customer,omitempty"`
	CustomerTax   string        `json:"customer_tax_code,omitempty"`
	Table         string        `json:"table,omitempty"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Items         []ReceiptItem `json:"items"`
	SubTotal      int64         `json:"subtotal"`
	DiscountTotal int64         `json:"discount_total"`
	TaxGroups     []TaxGroup    `json:"tax_groups"`
	GrandTotal    int64         `json:"grand_total"`
	Footer        string        `json:"footer,omitempty"`
	LookupCode    string        `json:"lookup_code,omitempty"`
	IsPreview     bool          `json:"is_preview"`
	NoData        bool          `json:"no_data"`
}
