package request

// CustomerRequest represents a customer create or update request
type CustomerRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=20"`
	Email   *string `json:"email" binding:"omitempty,email"`
	TaxCode *string `json:"tax_code" binding:"omitempty,max=50"`
	Address *string `json:"address" binding:"omitempty,max=500"`
}

// CustomerFilterRequest represents customer filter parameters
type CustomerFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
