package request

import "github.com/phamtrung/pos-api/internal/application/receipt"

// PreviewReceiptRequest represents a receipt preview request for an
// in-progress cart. An empty cart is not an error; the preview renders a
// placeholder instead.
type PreviewReceiptRequest struct {
	Items    []receipt.CartItem `json:"items"`
	Discount int64              `json:"discount" binding:"min=0"`
	Total    int64              `json:"total" binding:"min=0"`
	IsTitle  *bool              `json:"is_title"`
	Cashier  string             `json:"cashier" binding:"omitempty,max=255"`
}

// PrintOrderRequest represents a print dispatch request
type PrintOrderRequest struct {
	Kind     string `json:"kind" binding:"omitempty,oneof=front_desk kitchen"`
	Platform string `json:"platform" binding:"omitempty,oneof=desktop ios android"`
	IsTitle  *bool  `json:"is_title"`
}
