package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/application/receipt"
	"github.com/phamtrung/pos-api/internal/domain/entity"
	"github.com/phamtrung/pos-api/internal/domain/enum"
	"github.com/phamtrung/pos-api/internal/domain/repository"
	"github.com/phamtrung/pos-api/pkg/apperror"
	"github.com/phamtrung/pos-api/pkg/pagination"
	"github.com/phamtrung/pos-api/pkg/utils"
)

// OrderService handles order-related operations
type OrderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	productRepo   repository.ProductRepository
	customerRepo  repository.CustomerRepository
	tableRepo     repository.TableRepository
	settingsRepo  repository.SettingsRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	tableRepo repository.TableRepository,
	settingsRepo repository.SettingsRepository,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		productRepo:   productRepo,
		customerRepo:  customerRepo,
		tableRepo:     tableRepo,
		settingsRepo:  settingsRepo,
	}
}

// OrderItemInput represents an item in an order
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	TableID         *uuid.UUID
	CustomerID      *uuid.UUID
	EmployeeID      *uuid.UUID
	CustomerName    string
	CustomerTaxCode string
	PaymentMethod   string
	Discount        int64
	Note            string
	Items           []OrderItemInput
}

// CreateOrder creates a new order with its items. Prices and tax rates come
// from the product catalog at the moment of checkout, never from the client;
// the order-level discount is allocated across items and each share is
// persisted so later re-renders reproduce the exact same breakdown.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order must contain at least one item")
	}
	if input.Discount < 0 {
		return nil, apperror.NewBadRequestError("Discount cannot be negative")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	priceIncludeTax := settings != nil && settings.PriceIncludeTax

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		if input.CustomerName == "" {
			input.CustomerName = customer.Name
		}
		if input.CustomerTaxCode == "" && customer.TaxCode != nil {
			input.CustomerTaxCode = *customer.TaxCode
		}
	}

	if input.TableID != nil {
		table, err := s.tableRepo.GetByID(ctx, *input.TableID)
		if err != nil {
			return nil, err
		}
		if table == nil {
			return nil, apperror.NewNotFoundError("Table")
		}
	}

	// Batch fetch all products in one query (prevents N+1)
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	lines := make([]receipt.Line, len(input.Items))
	for i, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		if !product.IsActive {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Product %s is not available", product.Name))
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Invalid quantity for %s", product.Name))
		}
		lines[i] = receipt.Line{
			Name:      product.Name,
			SKU:       product.SKU,
			Quantity:  item.Quantity,
			UnitPrice: product.UnitPrice,
			TaxRate:   product.TaxRate,
		}
	}

	alloc := receipt.Allocate(receipt.Params{
		Lines:           lines,
		OrderDiscount:   input.Discount,
		PriceIncludeTax: priceIncludeTax,
	})
	if input.Discount > alloc.SubTotal {
		return nil, apperror.NewBadRequestError("Discount exceeds order subtotal")
	}

	total := alloc.SubTotal - alloc.DiscountTotal
	if !priceIncludeTax {
		total += alloc.TaxTotal
	}

	order := &entity.Order{
		ReceiptNo:       utils.GenerateReceiptNo("RCP"),
		TableID:         input.TableID,
		CustomerID:      input.CustomerID,
		EmployeeID:      input.EmployeeID,
		CustomerName:    input.CustomerName,
		CustomerTaxCode: input.CustomerTaxCode,
		PaymentMethod:   input.PaymentMethod,
		OrderDate:       time.Now(),
		Status:          enum.OrderStatusPending,
		PriceIncludeTax: priceIncludeTax,
		SubTotal:        alloc.SubTotal,
		Discount:        alloc.DiscountTotal,
		Tax:             alloc.TaxTotal,
		Total:           total,
		Note:            input.Note,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	items := make([]entity.OrderItem, len(alloc.Items))
	for i, it := range alloc.Items {
		items[i] = entity.OrderItem{
			OrderID:     order.ID,
			ProductID:   input.Items[i].ProductID,
			ProductName: it.Name,
			SKU:         it.SKU,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Discount:    it.Discount,
			TaxRate:     it.TaxRate,
			Position:    i,
		}
	}
	if err := s.orderItemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

// GetOrder retrieves an order with its items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders returns a paginated, filtered order list
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, p), nil
}

// ListOrdersWithCursor returns orders using cursor-based pagination
func (s *OrderService) ListOrdersWithCursor(ctx context.Context, params *repository.OrderCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Order], error) {
	orders, err := s.orderRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}
	cp, trimmed := pagination.NewCursorPagination(orders, params.Cursor.Limit,
		func(o entity.Order) string { return o.ID.String() },
		func(o entity.Order) time.Time { return o.CreatedAt },
	)
	return pagination.NewCursorPaginatedResult(trimmed, cp), nil
}

// UpdateStatus transitions an order's status
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusCancelled {
		return nil, apperror.NewConflictError("Cancelled orders cannot change status")
	}
	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// CancelOrder cancels a pending order. Completed orders are fiscal records
// and stay untouched.
func (s *OrderService) CancelOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status != enum.OrderStatusPending {
		return nil, apperror.NewConflictError("Only pending orders can be cancelled")
	}
	if err := s.orderRepo.UpdateStatus(ctx, id, enum.OrderStatusCancelled); err != nil {
		return nil, err
	}
	order.Status = enum.OrderStatusCancelled
	return order, nil
}

// CompleteOnPrint marks a pending order completed after its final receipt
// has been dispatched. Already-completed orders are left alone so reprints
// stay idempotent.
func (s *OrderService) CompleteOnPrint(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	if order.Status != enum.OrderStatusPending {
		return nil
	}
	return s.orderRepo.UpdateStatus(ctx, id, enum.OrderStatusCompleted)
}
