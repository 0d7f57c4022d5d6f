package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreSettings holds store-wide configuration. A single row is seeded at
// startup; the PIN is stored as configured and compared verbatim at session
// open (it gates the till, it is not an authentication secret).
type StoreSettings struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	StoreName       string         `gorm:"size:255;not null" json:"store_name"`
	Address         string         `gorm:"type:text" json:"address"`
	Phone           string         `gorm:"size:50" json:"phone"`
	TaxCode         string         `gorm:"size:50" json:"tax_code"`
	PinCode         string         `gorm:"size:20" json:"-"`
	Currency        string         `gorm:"size:10;default:'VND'" json:"currency"`
	PriceIncludeTax bool           `gorm:"default:false" json:"price_include_tax"`
	ReceiptFooter   string         `gorm:"type:text" json:"receipt_footer"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating settings
func (s *StoreSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StoreSettings model
func (StoreSettings) TableName() string {
	return "store_settings"
}
