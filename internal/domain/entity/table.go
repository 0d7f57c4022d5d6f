package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DiningTable represents a physical table in the restaurant. Floor drives
// kitchen printer routing.
type DiningTable struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Floor     int            `gorm:"default:1" json:"floor"`
	Seats     int            `gorm:"default:0" json:"seats"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new table
func (t *DiningTable) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DiningTable model
func (DiningTable) TableName() string {
	return "dining_tables"
}
