package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/application/receipt"
	"github.com/phamtrung/pos-api/internal/domain/entity"
	"github.com/phamtrung/pos-api/internal/domain/repository"
	"github.com/phamtrung/pos-api/pkg/apperror"
	"github.com/phamtrung/pos-api/pkg/printer"
)

// ReceiptService builds receipt view models and renders them. Previews are
// computed from the terminal's cart; final receipts always come from the
// stored order.
type ReceiptService struct {
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
	einvoiceRepo repository.EInvoiceProviderRepository
	paperWidth   int
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	orderRepo repository.OrderRepository,
	settingsRepo repository.SettingsRepository,
	einvoiceRepo repository.EInvoiceProviderRepository,
	paperWidth int,
) *ReceiptService {
	if paperWidth <= 0 {
		paperWidth = 42
	}
	return &ReceiptService{
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		einvoiceRepo: einvoiceRepo,
		paperWidth:   paperWidth,
	}
}

func (s *ReceiptService) storeHeader(ctx context.Context) (entity.ReceiptHeader, string, bool, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil || settings == nil {
		return entity.ReceiptHeader{}, "", false, err
	}
	header := entity.ReceiptHeader{
		StoreName: settings.StoreName,
		Address:   settings.Address,
		Phone:     settings.Phone,
		TaxCode:   settings.TaxCode,
	}
	return header, settings.ReceiptFooter, settings.PriceIncludeTax, nil
}

// PreviewInput represents a cart preview request
type PreviewInput struct {
	Items    []receipt.CartItem
	Discount int64
	Total    int64
	IsTitle  *bool
	Cashier  string
}

// BuildPreview computes a preview receipt from an in-progress cart. It never
// fails on empty input; the caller gets a placeholder instead.
func (s *ReceiptService) BuildPreview(ctx context.Context, input *PreviewInput) (*entity.Receipt, error) {
	header, footer, inclusive, err := s.storeHeader(ctx)
	if err != nil {
		return nil, err
	}
	return receipt.Build(receipt.Input{
		CartItems:       input.Items,
		CartDiscount:    input.Discount,
		CartTotal:       input.Total,
		PriceIncludeTax: inclusive,
		IsPreview:       true,
		IsTitle:         input.IsTitle,
		Header:          header,
		Footer:          footer,
		Cashier:         input.Cashier,
	}), nil
}

// BuildFinal builds the receipt for a stored order. When an e-invoice
// provider is active the receipt carries a lookup code rendered as a QR.
func (s *ReceiptService) BuildFinal(ctx context.Context, orderID uuid.UUID, isTitle *bool, cashier string) (*entity.Receipt, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	header, footer, _, err := s.storeHeader(ctx)
	if err != nil {
		return nil, err
	}
	if cashier == "" && order.Employee != nil {
		cashier = order.Employee.Name
	}

	r := receipt.Build(receipt.Input{
		Order:   order,
		IsTitle: isTitle,
		Header:  header,
		Footer:  footer,
		Cashier: cashier,
	})

	provider, err := s.einvoiceRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if provider != nil {
		r.LookupCode = LookupURL(provider, order)
	}

	return r, nil
}

// LookupURL builds the e-invoice portal lookup link for an order.
func LookupURL(provider *entity.EInvoiceProvider, order *entity.Order) string {
	if provider.APIURL == "" {
		return ""
	}
	q := url.Values{}
	q.Set("template", provider.TemplateCode)
	q.Set("serial", provider.Serial)
	q.Set("code", order.ReceiptNo)
	return fmt.Sprintf("%s/lookup?%s", provider.APIURL, q.Encode())
}

// Document renders the receipt as an ESC/POS document at the configured
// paper width.
func (s *ReceiptService) Document(r *entity.Receipt) *printer.Document {
	return receipt.RenderDocument(r, s.paperWidth)
}

// HTML renders the receipt as a standalone HTML page. Final receipts embed
// an auto-print script with the given delay.
func (s *ReceiptService) HTML(r *entity.Receipt, autoPrint bool, delayMS int) (string, error) {
	return receipt.RenderHTML(r, receipt.HTMLOptions{AutoPrint: autoPrint, PrintDelayMS: delayMS})
}

// PDF renders the receipt as an 80mm PDF document.
func (s *ReceiptService) PDF(r *entity.Receipt) ([]byte, error) {
	return receipt.RenderPDF(r)
}
