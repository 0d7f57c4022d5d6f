package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/domain/entity"
	"github.com/phamtrung/pos-api/internal/domain/repository"
	"github.com/phamtrung/pos-api/pkg/apperror"
)

// PrinterConfigService manages the store's printer configurations
type PrinterConfigService struct {
	printerRepo repository.PrinterConfigRepository
}

// NewPrinterConfigService creates a new printer config service
func NewPrinterConfigService(printerRepo repository.PrinterConfigRepository) *PrinterConfigService {
	return &PrinterConfigService{printerRepo: printerRepo}
}

// PrinterConfigInput represents create/update printer data
type PrinterConfigInput struct {
	Name        string
	PrinterType string
	IPAddress   string
	Port        *int
	Copies      *int
	MacAddress  string
	IsActive    *bool
	IsEmployee  *bool
	IsKitchen   *bool
	Floor       *int
}

// CreatePrinter registers a new printer
func (s *PrinterConfigService) CreatePrinter(ctx context.Context, input *PrinterConfigInput) (*entity.PrinterConfig, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Printer name is required")
	}
	if input.IPAddress == "" {
		return nil, apperror.NewBadRequestError("Printer IP address is required")
	}

	cfg := &entity.PrinterConfig{
		Name:        input.Name,
		PrinterType: input.PrinterType,
		IPAddress:   input.IPAddress,
		MacAddress:  input.MacAddress,
		Port:        9100,
		Copies:      1,
		IsActive:    true,
	}
	if cfg.PrinterType == "" {
		cfg.PrinterType = "network"
	}
	if input.Port != nil {
		cfg.Port = *input.Port
	}
	if input.Copies != nil && *input.Copies > 0 {
		cfg.Copies = *input.Copies
	}
	if input.IsActive != nil {
		cfg.IsActive = *input.IsActive
	}
	if input.IsEmployee != nil {
		cfg.IsEmployee = *input.IsEmployee
	}
	if input.IsKitchen != nil {
		cfg.IsKitchen = *input.IsKitchen
	}
	if input.Floor != nil {
		cfg.Floor = *input.Floor
	}

	if err := s.printerRepo.Create(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ListPrinters returns all configured printers
func (s *PrinterConfigService) ListPrinters(ctx context.Context) ([]entity.PrinterConfig, error) {
	return s.printerRepo.List(ctx)
}

// UpdatePrinter updates an existing printer config
func (s *PrinterConfigService) UpdatePrinter(ctx context.Context, id uuid.UUID, input *PrinterConfigInput) (*entity.PrinterConfig, error) {
	cfg, err := s.printerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, apperror.NewNotFoundError("Printer")
	}

	if input.Name != "" {
		cfg.Name = input.Name
	}
	if input.PrinterType != "" {
		cfg.PrinterType = input.PrinterType
	}
	if input.IPAddress != "" {
		cfg.IPAddress = input.IPAddress
	}
	if input.MacAddress != "" {
		cfg.MacAddress = input.MacAddress
	}
	if input.Port != nil {
		cfg.Port = *input.Port
	}
	if input.Copies != nil && *input.Copies > 0 {
		cfg.Copies = *input.Copies
	}
	if input.IsActive != nil {
		cfg.IsActive = *input.IsActive
	}
	if input.IsEmployee != nil {
		cfg.IsEmployee = *input.IsEmployee
	}
	if input.IsKitchen != nil {
		cfg.IsKitchen = *input.IsKitchen
	}
	if input.Floor != nil {
		cfg.Floor = *input.Floor
	}

	if err := s.printerRepo.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DeletePrinter removes a printer config
func (s *PrinterConfigService) DeletePrinter(ctx context.Context, id uuid.UUID) error {
	cfg, err := s.printerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cfg == nil {
		return apperror.NewNotFoundError("Printer")
	}
	return s.printerRepo.Delete(ctx, id)
}
