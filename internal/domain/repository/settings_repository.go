package repository

import (
	"context"

	"github.com/phamtrung/pos-api/internal/domain/entity"
)

// SettingsRepository defines the interface for store settings operations
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.StoreSettings, error)
	Create(ctx context.Context, settings *entity.StoreSettings) error
	Update(ctx context.Context, settings *entity.StoreSettings) error
}
