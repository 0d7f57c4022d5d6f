package database

import (
	"fmt"
	"log"

	"github.com/phamtrung/pos-api/internal/config"
	"github.com/phamtrung/pos-api/internal/domain/entity"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Catalog entities
		&entity.Category{},
		&entity.Product{},

		// Floor entities
		&entity.DiningTable{},

		// People
		&entity.Customer{},
		&entity.Employee{},

		// Sales entities
		&entity.Order{},
		&entity.OrderItem{},

		// Configuration entities
		&entity.StoreSettings{},
		&entity.PrinterConfig{},
		&entity.PaymentMethod{},
		&entity.EInvoiceProvider{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the store settings row, default payment methods and
// an optional admin employee configured via environment variables
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Store settings is a singleton row; create it once with defaults the
	// settings console can edit later.
	var settingsCount int64
	db.Model(&entity.StoreSettings{}).Count(&settingsCount)
	if settingsCount == 0 {
		settings := entity.StoreSettings{
			StoreName:     viper.GetString("STORE_NAME"),
			PinCode:       viper.GetString("STORE_PIN"),
			Currency:      "VND",
			ReceiptFooter: "Thank you, see you again!",
		}
		if settings.StoreName == "" {
			settings.StoreName = "My Store"
		}
		if settings.PinCode == "" {
			settings.PinCode = "0000"
			log.Println("Warning: STORE_PIN not set, using default PIN 0000")
		}
		if err := db.Create(&settings).Error; err != nil {
			return fmt.Errorf("failed to seed store settings: %w", err)
		}
	}

	methods := []entity.PaymentMethod{
		{Name: "Cash", Code: "cash", Position: 1, IsActive: true},
		{Name: "Card", Code: "card", Position: 2, IsActive: true},
		{Name: "Bank Transfer", Code: "transfer", Position: 3, IsActive: true},
	}
	for i := range methods {
		var existing entity.PaymentMethod
		if err := db.Where("code = ?", methods[i].Code).First(&existing).Error; err != nil {
			if err := db.Create(&methods[i]).Error; err != nil {
				log.Printf("Warning: failed to create payment method %s: %v", methods[i].Code, err)
			}
		}
	}

	// Create admin employee if configured via environment variables
	adminName := viper.GetString("ADMIN_NAME")
	adminPasscode := viper.GetString("ADMIN_PASSCODE")

	if adminName != "" && adminPasscode != "" {
		var existing entity.Employee
		if err := db.Where("name = ?", adminName).First(&existing).Error; err != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(adminPasscode), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin passcode: %v", err)
			} else {
				admin := entity.Employee{
					Name:         adminName,
					Role:         "admin",
					PasscodeHash: string(hash),
					IsActive:     true,
				}
				if err := db.Create(&admin).Error; err != nil {
					log.Printf("Warning: failed to create admin employee: %v", err)
				} else {
					log.Printf("Admin employee created: %s", adminName)
				}
			}
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
