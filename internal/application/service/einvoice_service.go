package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/domain/entity"
	"github.com/phamtrung/pos-api/internal/domain/repository"
	"github.com/phamtrung/pos-api/pkg/apperror"
)

// EInvoiceService manages electronic-invoice provider configuration
type EInvoiceService struct {
	providerRepo repository.EInvoiceProviderRepository
}

// NewEInvoiceService creates a new e-invoice service
func NewEInvoiceService(providerRepo repository.EInvoiceProviderRepository) *EInvoiceService {
	return &EInvoiceService{providerRepo: providerRepo}
}

// EInvoiceProviderInput represents create/update provider data
type EInvoiceProviderInput struct {
	Name         string
	Code         string
	APIURL       string
	APIKey       *string
	TemplateCode string
	Serial       string
	IsActive     *bool
}

// CreateProvider registers a new provider configuration
func (s *EInvoiceService) CreateProvider(ctx context.Context, input *EInvoiceProviderInput) (*entity.EInvoiceProvider, error) {
	if input.Name == "" || input.Code == "" {
		return nil, apperror.NewBadRequestError("Provider name and code are required")
	}

	provider := &entity.EInvoiceProvider{
		Name:         input.Name,
		Code:         input.Code,
		APIURL:       input.APIURL,
		TemplateCode: input.TemplateCode,
		Serial:       input.Serial,
	}
	if input.APIKey != nil {
		provider.APIKey = *input.APIKey
	}
	if input.IsActive != nil && *input.IsActive {
		if err := s.deactivateAll(ctx); err != nil {
			return nil, err
		}
		provider.IsActive = true
	}

	if err := s.providerRepo.Create(ctx, provider); err != nil {
		return nil, err
	}
	return provider, nil
}

// ListProviders returns all configured providers
func (s *EInvoiceService) ListProviders(ctx context.Context) ([]entity.EInvoiceProvider, error) {
	return s.providerRepo.List(ctx)
}

// UpdateProvider updates a provider. Activating one deactivates the rest;
// at most one provider issues invoices at a time.
func (s *EInvoiceService) UpdateProvider(ctx context.Context, id uuid.UUID, input *EInvoiceProviderInput) (*entity.EInvoiceProvider, error) {
	provider, err := s.providerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, apperror.NewNotFoundError("E-invoice provider")
	}

	if input.Name != "" {
		provider.Name = input.Name
	}
	if input.APIURL != "" {
		provider.APIURL = input.APIURL
	}
	if input.APIKey != nil {
		provider.APIKey = *input.APIKey
	}
	if input.TemplateCode != "" {
		provider.TemplateCode = input.TemplateCode
	}
	if input.Serial != "" {
		provider.Serial = input.Serial
	}
	if input.IsActive != nil {
		if *input.IsActive && !provider.IsActive {
			if err := s.deactivateAll(ctx); err != nil {
				return nil, err
			}
		}
		provider.IsActive = *input.IsActive
	}

	if err := s.providerRepo.Update(ctx, provider); err != nil {
		return nil, err
	}
	return provider, nil
}

// DeleteProvider removes a provider configuration
func (s *EInvoiceService) DeleteProvider(ctx context.Context, id uuid.UUID) error {
	provider, err := s.providerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if provider == nil {
		return apperror.NewNotFoundError("E-invoice provider")
	}
	return s.providerRepo.Delete(ctx, id)
}

func (s *EInvoiceService) deactivateAll(ctx context.Context) error {
	providers, err := s.providerRepo.List(ctx)
	if err != nil {
		return err
	}
	for i := range providers {
		if providers[i].IsActive {
			providers[i].IsActive = false
			if err := s.providerRepo.Update(ctx, &providers[i]); err != nil {
				return err
			}
		}
	}
	return nil
}
