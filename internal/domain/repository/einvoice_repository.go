package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/domain/entity"
)

// EInvoiceProviderRepository defines the interface for e-invoice provider operations
type EInvoiceProviderRepository interface {
	Create(ctx context.Context, provider *entity.EInvoiceProvider) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.EInvoiceProvider, error)
	GetActive(ctx context.Context) (*entity.EInvoiceProvider, error)
	List(ctx context.Context) ([]entity.EInvoiceProvider, error)
	Update(ctx context.Context, provider *entity.EInvoiceProvider) error
	Delete(ctx context.Context, id uuid.UUID) error
}
