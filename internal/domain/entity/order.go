package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a sales order. Amounts are stored in the currency's base
// unit (VND has no fractional unit). Once an order is paid its stored Total
// is fiscal truth: receipt rendering may re-derive the subtotal/tax/discount
// breakdown for display but never the grand total.
type Order struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptNo       string           `gorm:"size:100;unique;not null" json:"receipt_no"`
	TableID         *uuid.UUID       `gorm:"type:uuid;index" json:"table_id,omitempty"`
	CustomerID      *uuid.UUID       `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	EmployeeID      *uuid.UUID       `gorm:"type:uuid;index" json:"employee_id,omitempty"`
	CustomerName    string           `gorm:"size:255" json:"customer_name"`
	CustomerTaxCode string           `gorm:"size:50" json:"customer_tax_code"`
	PaymentMethod   string           `gorm:"size:50" json:"payment_method"`
	OrderDate       time.Time        `gorm:"not null" json:"order_date"`
	Status          enum.OrderStatus `gorm:"default:0" json:"status"`
	PriceIncludeTax bool             `gorm:"default:false" json:"price_include_tax"`
	SubTotal        int64            `gorm:"default:0" json:"subtotal"`
	Discount        int64            `gorm:"default:0" json:"discount"`
	Tax             int64            `gorm:"default:0" json:"tax"`
	Total           int64            `gorm:"default:0" json:"total"`
	Note            string           `gorm:"type:text" json:"note,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Table    *DiningTable `gorm:"foreignKey:TableID" json:"table,omitempty"`
	Customer *Customer    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Employee *Employee    `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Items    []OrderItem  `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents a line item in an order. Discount is the absolute
// per-item amount persisted at checkout; cart previews carry no persisted
// item discounts and allocate the order-level discount at render time.
type OrderItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string         `gorm:"size:255;not null" json:"product_name"`
	SKU         string         `gorm:"size:100" json:"sku"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	UnitPrice   int64          `gorm:"not null" json:"unit_price"`
	Discount    int64          `gorm:"default:0" json:"discount"`
	TaxRate     float64        `gorm:"default:0" json:"tax_rate"`
	Position    int            `gorm:"default:0" json:"position"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
