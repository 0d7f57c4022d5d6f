package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/domain/entity"
	"github.com/phamtrung/pos-api/internal/domain/repository"
	"github.com/phamtrung/pos-api/pkg/apperror"
	"github.com/phamtrung/pos-api/pkg/utils"
)

// PaymentMethodService handles payment method configuration
type PaymentMethodService struct {
	methodRepo repository.PaymentMethodRepository
}

// NewPaymentMethodService creates a new payment method service
func NewPaymentMethodService(methodRepo repository.PaymentMethodRepository) *PaymentMethodService {
	return &PaymentMethodService{methodRepo: methodRepo}
}

// PaymentMethodInput represents create/update payment method data
type PaymentMethodInput struct {
	Name     string
	Code     string
	Position *int
	IsActive *bool
}

// CreatePaymentMethod creates a new payment method
func (s *PaymentMethodService) CreatePaymentMethod(ctx context.Context, input *PaymentMethodInput) (*entity.PaymentMethod, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Payment method name is required")
	}
	code := input.Code
	if code == "" {
		code = utils.Slugify(input.Name)
	}

	existing, err := s.methodRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Payment method code already exists")
	}

	method := &entity.PaymentMethod{
		Name:     input.Name,
		Code:     code,
		IsActive: true,
	}
	if input.Position != nil {
		method.Position = *input.Position
	}
	if input.IsActive != nil {
		method.IsActive = *input.IsActive
	}

	if err := s.methodRepo.Create(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

// ListPaymentMethods returns payment methods, optionally only active ones
func (s *PaymentMethodService) ListPaymentMethods(ctx context.Context, activeOnly bool) ([]entity.PaymentMethod, error) {
	return s.methodRepo.List(ctx, activeOnly)
}

// UpdatePaymentMethod updates an existing payment method
func (s *PaymentMethodService) UpdatePaymentMethod(ctx context.Context, id uuid.UUID, input *PaymentMethodInput) (*entity.PaymentMethod, error) {
	method, err := s.methodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, apperror.NewNotFoundError("Payment method")
	}

	if input.Name != "" {
		method.Name = input.Name
	}
	if input.Position != nil {
		method.Position = *input.Position
	}
	if input.IsActive != nil {
		method.IsActive = *input.IsActive
	}

	if err := s.methodRepo.Update(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

// DeletePaymentMethod soft-deletes a payment method. Orders keep the method
// name they were settled with.
func (s *PaymentMethodService) DeletePaymentMethod(ctx context.Context, id uuid.UUID) error {
	method, err := s.methodRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if method == nil {
		return apperror.NewNotFoundError("Payment method")
	}
	return s.methodRepo.Delete(ctx, id)
}
