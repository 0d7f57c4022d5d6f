package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/domain/entity"
)

// TableRepository defines the interface for dining table data operations
type TableRepository interface {
	Create(ctx context.Context, table *entity.DiningTable) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DiningTable, error)
	List(ctx context.Context, floor *int) ([]entity.DiningTable, error)
	Update(ctx context.Context, table *entity.DiningTable) error
	Delete(ctx context.Context, id uuid.UUID) error
}
