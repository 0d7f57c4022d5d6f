package request

import "github.com/google/uuid"

// OrderItemRequest is a single line of a checkout request. Only the product
// and quantity are taken from the client; prices come from the catalog.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest represents a checkout request
type CreateOrderRequest struct {
	TableID         *uuid.UUID         `json:"table_id"`
	CustomerID      *uuid.UUID         `json:"customer_id"`
	EmployeeID      *uuid.UUID         `json:"employee_id"`
	CustomerName    string             `json:"customer_name" binding:"omitempty,max=255"`
	CustomerTaxCode string             `json:"customer_tax_code" binding:"omitempty,max=50"`
	PaymentMethod   string             `json:"payment_method" binding:"omitempty,max=50"`
	Discount        int64              `json:"discount" binding:"min=0"`
	Note            string             `json:"note" binding:"omitempty,max=1000"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest represents an order status change request
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending completed cancelled"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	TableID    string `form:"table_id"`
	CustomerID string `form:"customer_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
	Limit      int    `form:"limit"` // For cursor-based pagination
}
