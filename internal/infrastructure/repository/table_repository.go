package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/domain/entity"
	domainRepo "github.com/phamtrung/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type tableRepository struct {
	db *gorm.DB
}

// NewTableRepository creates a new dining table repository
func NewTableRepository(db *gorm.DB) domainRepo.TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Create(ctx context.Context, table *entity.DiningTable) error {
	return r.db.WithContext(ctx).Create(table).Error
}

func (r *tableRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DiningTable, error) {
	var table entity.DiningTable
	err := r.db.WithContext(ctx).First(&table, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &table, err
}

func (r *tableRepository) List(ctx context.Context, floor *int) ([]entity.DiningTable, error) {
	var tables []entity.DiningTable
	query := r.db.WithContext(ctx).Model(&entity.DiningTable{})
	if floor != nil {
		query = query.Where("floor = ?", *floor)
	}
	err := query.Order("floor ASC, name ASC").Find(&tables).Error
	return tables, err
}

func (r *tableRepository) Update(ctx context.Context, table *entity.DiningTable) error {
	return r.db.WithContext(ctx).Save(table).Error
}

func (r *tableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.DiningTable{}, "id = ?", id).Error
}
