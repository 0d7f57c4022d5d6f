package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/domain/entity"
	"github.com/phamtrung/pos-api/internal/domain/enum"
	"github.com/phamtrung/pos-api/internal/domain/repository"
	"github.com/phamtrung/pos-api/pkg/apperror"
	"github.com/phamtrung/pos-api/pkg/pagination"
)

// TableService handles dining table operations
type TableService struct {
	tableRepo repository.TableRepository
	orderRepo repository.OrderRepository
}

// NewTableService creates a new table service
func NewTableService(tableRepo repository.TableRepository, orderRepo repository.OrderRepository) *TableService {
	return &TableService{tableRepo: tableRepo, orderRepo: orderRepo}
}

// TableInput represents create/update table data
type TableInput struct {
	Name     string
	Floor    int
	Seats    int
	IsActive *bool
}

// TableStatus is a table together with its open order, for the floor view.
type TableStatus struct {
	entity.DiningTable
	OpenOrder *entity.Order `json:"open_order,omitempty"`
}

// CreateTable creates a new dining table
func (s *TableService) CreateTable(ctx context.Context, input *TableInput) (*entity.DiningTable, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Table name is required")
	}
	if input.Floor < 1 {
		input.Floor = 1
	}
	table := &entity.DiningTable{
		Name:     input.Name,
		Floor:    input.Floor,
		Seats:    input.Seats,
		IsActive: true,
	}
	if input.IsActive != nil {
		table.IsActive = *input.IsActive
	}
	if err := s.tableRepo.Create(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// ListTables returns tables with their open (pending) order attached, so the
// floor screen can show which tables are occupied in one request.
func (s *TableService) ListTables(ctx context.Context, floor *int) ([]TableStatus, error) {
	tables, err := s.tableRepo.List(ctx, floor)
	if err != nil {
		return nil, err
	}

	statuses := make([]TableStatus, len(tables))
	pending := enum.OrderStatusPending
	for i, t := range tables {
		statuses[i] = TableStatus{DiningTable: t}
		tableID := t.ID
		orders, _, err := s.orderRepo.List(ctx, &repository.OrderFilterParams{
			Pagination: pagination.DefaultPagination(),
			Status:     &pending,
			TableID:    &tableID,
		})
		if err != nil {
			return nil, err
		}
		if len(orders) > 0 {
			statuses[i].OpenOrder = &orders[0]
		}
	}
	return statuses, nil
}

// GetTable retrieves a table by ID
func (s *TableService) GetTable(ctx context.Context, id uuid.UUID) (*entity.DiningTable, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}
	return table, nil
}

// UpdateTable updates an existing table
func (s *TableService) UpdateTable(ctx context.Context, id uuid.UUID, input *TableInput) (*entity.DiningTable, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}

	if input.Name != "" {
		table.Name = input.Name
	}
	if input.Floor > 0 {
		table.Floor = input.Floor
	}
	if input.Seats > 0 {
		table.Seats = input.Seats
	}
	if input.IsActive != nil {
		table.IsActive = *input.IsActive
	}

	if err := s.tableRepo.Update(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// DeleteTable soft-deletes a table
func (s *TableService) DeleteTable(ctx context.Context, id uuid.UUID) error {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if table == nil {
		return apperror.NewNotFoundError("Table")
	}
	return s.tableRepo.Delete(ctx, id)
}
