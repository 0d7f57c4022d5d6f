package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EInvoiceProvider represents a configured electronic-invoice provider.
// Issued invoices carry a lookup code the customer can verify on the
// provider's portal; the code is rendered as a QR on the final receipt.
type EInvoiceProvider struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Code         string         `gorm:"size:50;unique;not null" json:"code"`
	APIURL       string         `gorm:"size:500" json:"api_url"`
	APIKey       string         `gorm:"size:255" json:"-"`
	TemplateCode string         `gorm:"size:50" json:"template_code"`
	Serial       string         `gorm:"size:50" json:"serial"`
	IsActive     bool           `gorm:"default:false" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new provider
func (p *EInvoiceProvider) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the EInvoiceProvider model
func (EInvoiceProvider) TableName() string {
	return "einvoice_providers"
}
