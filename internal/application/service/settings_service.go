package service

import (
	"context"

	"github.com/phamtrung/pos-api/internal/domain/entity"
	"github.com/phamtrung/pos-api/internal/domain/repository"
	"github.com/phamtrung/pos-api/pkg/apperror"
)

// SettingsService handles store-wide configuration
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings retrieves the store settings, creating defaults if not exists
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.StoreSettings{
			StoreName:     "My Store",
			Currency:      "VND",
			PinCode:       "0000",
			ReceiptFooter: "Thank you, see you again!",
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// UpdateSettingsInput represents the input for updating store settings
type UpdateSettingsInput struct {
	StoreName       *string
	Address         *string
	Phone           *string
	TaxCode         *string
	PriceIncludeTax *bool
	ReceiptFooter   *string
}

// UpdateSettings updates the store settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.StoreSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.StoreName != nil {
		if *input.StoreName == "" {
			return nil, apperror.NewBadRequestError("Store name cannot be empty")
		}
		settings.StoreName = *input.StoreName
	}
	if input.Address != nil {
		settings.Address = *input.Address
	}
	if input.Phone != nil {
		settings.Phone = *input.Phone
	}
	if input.TaxCode != nil {
		settings.TaxCode = *input.TaxCode
	}
	if input.PriceIncludeTax != nil {
		settings.PriceIncludeTax = *input.PriceIncludeTax
	}
	if input.ReceiptFooter != nil {
		settings.ReceiptFooter = *input.ReceiptFooter
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// ChangePIN replaces the store PIN after verifying the current one
func (s *SettingsService) ChangePIN(ctx context.Context, currentPIN, newPIN string) error {
	if len(newPIN) < 4 {
		return apperror.NewBadRequestError("PIN must be at least 4 digits")
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return err
	}
	if settings.PinCode != currentPIN {
		return apperror.ErrInvalidPIN
	}

	settings.PinCode = newPIN
	return s.settingsRepo.Update(ctx, settings)
}
