package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/domain/entity"
)

// PrinterConfigRepository defines the interface for printer config operations
type PrinterConfigRepository interface {
	Create(ctx context.Context, cfg *entity.PrinterConfig) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PrinterConfig, error)
	ListActive(ctx context.Context) ([]entity.PrinterConfig, error)
	List(ctx context.Context) ([]entity.PrinterConfig, error)
	Update(ctx context.Context, cfg *entity.PrinterConfig) error
	Delete(ctx context.Context, id uuid.UUID) error
}
