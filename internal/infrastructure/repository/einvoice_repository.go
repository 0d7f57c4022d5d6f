package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/domain/entity"
	domainRepo "github.com/phamtrung/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type einvoiceRepository struct {
	db *gorm.DB
}

// NewEInvoiceProviderRepository creates a new e-invoice provider repository
func NewEInvoiceProviderRepository(db *gorm.DB) domainRepo.EInvoiceProviderRepository {
	return &einvoiceRepository{db: db}
}

func (r *einvoiceRepository) Create(ctx context.Context, provider *entity.EInvoiceProvider) error {
	return r.db.WithContext(ctx).Create(provider).Error
}

func (r *einvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.EInvoiceProvider, error) {
	var provider entity.EInvoiceProvider
	err := r.db.WithContext(ctx).First(&provider, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &provider, err
}

// GetActive returns the provider invoices are issued through. At most one
// provider should be active at a time.
func (r *einvoiceRepository) GetActive(ctx context.Context) (*entity.EInvoiceProvider, error) {
	var provider entity.EInvoiceProvider
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("updated_at DESC").
		First(&provider).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &provider, err
}

func (r *einvoiceRepository) List(ctx context.Context) ([]entity.EInvoiceProvider, error) {
	var providers []entity.EInvoiceProvider
	err := r.db.WithContext(ctx).Order("name ASC").Find(&providers).Error
	return providers, err
}

func (r *einvoiceRepository) Update(ctx context.Context, provider *entity.EInvoiceProvider) error {
	return r.db.WithContext(ctx).Save(provider).Error
}

func (r *einvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.EInvoiceProvider{}, "id = ?", id).Error
}
