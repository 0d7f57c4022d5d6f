package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/domain/entity"
	domainRepo "github.com/phamtrung/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type printerConfigRepository struct {
	db *gorm.DB
}

// NewPrinterConfigRepository creates a new printer config repository
func NewPrinterConfigRepository(db *gorm.DB) domainRepo.PrinterConfigRepository {
	return &printerConfigRepository{db: db}
}

func (r *printerConfigRepository) Create(ctx context.Context, cfg *entity.PrinterConfig) error {
	return r.db.WithContext(ctx).Create(cfg).Error
}

func (r *printerConfigRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PrinterConfig, error) {
	var cfg entity.PrinterConfig
	err := r.db.WithContext(ctx).First(&cfg, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cfg, err
}

func (r *printerConfigRepository) ListActive(ctx context.Context) ([]entity.PrinterConfig, error) {
	var cfgs []entity.PrinterConfig
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&cfgs).Error
	return cfgs, err
}

func (r *printerConfigRepository) List(ctx context.Context) ([]entity.PrinterConfig, error) {
	var cfgs []entity.PrinterConfig
	err := r.db.WithContext(ctx).Order("name ASC").Find(&cfgs).Error
	return cfgs, err
}

func (r *printerConfigRepository) Update(ctx context.Context, cfg *entity.PrinterConfig) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}

func (r *printerConfigRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PrinterConfig{}, "id = ?", id).Error
}
