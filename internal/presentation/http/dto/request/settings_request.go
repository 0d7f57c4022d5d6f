package request

// UpdateSettingsRequest represents a store settings update request
type UpdateSettingsRequest struct {
	StoreName       *string `json:"store_name" binding:"omitempty,min=1,max=255"`
	Address         *string `json:"address" binding:"omitempty,max=500"`
	Phone           *string `json:"phone" binding:"omitempty,max=20"`
	TaxCode         *string `json:"tax_code" binding:"omitempty,max=50"`
	PriceIncludeTax *bool   `json:"price_include_tax"`
	ReceiptFooter   *string `json:"receipt_footer" binding:"omitempty,max=500"`
}

// ChangePINRequest represents a store PIN change request
type ChangePINRequest struct {
	CurrentPIN string `json:"current_pin" binding:"required"`
	NewPIN     string `json:"new_pin" binding:"required,min=4,max=12"`
}

// PaymentMethodRequest represents a payment method create or update request
type PaymentMethodRequest struct {
	Name     string `json:"name" binding:"omitempty,min=1,max=100"`
	Code     string `json:"code" binding:"omitempty,max=50"`
	Position *int   `json:"position" binding:"omitempty,min=0"`
	IsActive *bool  `json:"is_active"`
}

// EInvoiceProviderRequest represents an e-invoice provider create or update request
type EInvoiceProviderRequest struct {
	Name         string  `json:"name" binding:"omitempty,min=1,max=255"`
	Code         string  `json:"code" binding:"omitempty,max=50"`
	APIURL       string  `json:"api_url" binding:"omitempty,url"`
	APIKey       *string `json:"api_key"`
	TemplateCode string  `json:"template_code" binding:"omitempty,max=50"`
	Serial       string  `json:"serial" binding:"omitempty,max=50"`
	IsActive     *bool   `json:"is_active"`
}
