package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PrinterConfig describes one configured physical printer. Kitchen printers
// are matched against a table's floor; the active config with IsEmployee set
// is the designated front-desk printer and takes every front-desk job.
type PrinterConfig struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	PrinterType string         `gorm:"size:50;default:'network'" json:"printer_type"`
	IPAddress   string         `gorm:"size:50" json:"ip_address"`
	Port        int            `gorm:"default:9100" json:"port"`
	Copies      int            `gorm:"default:1" json:"copies"`
	MacAddress  string         `gorm:"size:50" json:"mac_address"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	IsEmployee  bool           `gorm:"default:false" json:"is_employee"`
	IsKitchen   bool           `gorm:"default:false" json:"is_kitchen"`
	Floor       int            `gorm:"default:0" json:"floor"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new printer config
func (p *PrinterConfig) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PrinterConfig model
func (PrinterConfig) TableName() string {
	return "printer_configs"
}
