package request

import "github.com/google/uuid"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	CategoryID *uuid.UUID `json:"category_id"`
	Name       string     `json:"name" binding:"required,min=1,max=255"`
	SKU        string     `json:"sku" binding:"omitempty,max=100"`
	UnitPrice  int64      `json:"unit_price" binding:"min=0"`
	TaxRate    float64    `json:"tax_rate" binding:"min=0,max=100"`
	IsActive   *bool      `json:"is_active"`
	Notes      *string    `json:"notes"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	CategoryID *uuid.UUID `json:"category_id"`
	Name       *string    `json:"name" binding:"omitempty,min=1,max=255"`
	UnitPrice  *int64     `json:"unit_price" binding:"omitempty,min=0"`
	TaxRate    *float64   `json:"tax_rate" binding:"omitempty,min=0,max=100"`
	IsActive   *bool      `json:"is_active"`
	Notes      *string    `json:"notes"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	ActiveOnly bool   `form:"active_only"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// CategoryRequest represents a category create or update request
type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}
