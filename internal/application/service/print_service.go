package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/config"
	"github.com/phamtrung/pos-api/internal/domain/entity"
	"github.com/phamtrung/pos-api/internal/domain/enum"
	"github.com/phamtrung/pos-api/internal/domain/repository"
	"github.com/phamtrung/pos-api/pkg/apperror"
	"github.com/phamtrung/pos-api/pkg/events"
	"github.com/phamtrung/pos-api/pkg/printer"
)

// Print method names reported back to the terminal.
const (
	PrintMethodRelay = "relay"
	PrintMethodAPI   = "print_api"
	PrintMethodPDF   = "pdf"
	PrintMethodHTML  = "html"
)

// PrintResult describes how a print request was fulfilled. Exactly one tier
// fulfills a request; ArtifactURL is set only for the file-based tiers.
type PrintResult struct {
	Method      string `json:"method"`
	Detail      string `json:"detail,omitempty"`
	ArtifactURL string `json:"artifact_url,omitempty"`
	// DelayMS is the auto-print delay the terminal should honor when it
	// opens an HTML artifact.
	DelayMS int `json:"delay_ms,omitempty"`
}

// PrintRequest is one print dispatch request.
type PrintRequest struct {
	OrderID uuid.UUID
	Kind    enum.ReceiptKind
	// Platform is the client's self-reported capability class (desktop,
	// ios, android). It only tunes the auto-print delay hint.
	Platform string
	Cashier  string
	IsTitle  *bool
}

// PrintService dispatches receipts through a fixed fallback chain: the
// store's configured printers via the local relay, then the vendor print
// API, then a PDF artifact, then an HTML artifact. The last tier cannot
// fail, so a cashier always ends up with something printable.
type PrintService struct {
	receiptSvc  *ReceiptService
	orderSvc    *OrderService
	printerRepo repository.PrinterConfigRepository
	relay       *printer.RelayClient
	bus         *events.Bus
	cfg         config.PrintConfig
	storagePath string
	httpClient  *http.Client

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

// NewPrintService creates a new print service
func NewPrintService(
	receiptSvc *ReceiptService,
	orderSvc *OrderService,
	printerRepo repository.PrinterConfigRepository,
	relay *printer.RelayClient,
	bus *events.Bus,
	cfg config.PrintConfig,
	storagePath string,
) *PrintService {
	return &PrintService{
		receiptSvc:  receiptSvc,
		orderSvc:    orderSvc,
		printerRepo: printerRepo,
		relay:       relay,
		bus:         bus,
		cfg:         cfg,
		storagePath: storagePath,
		httpClient:  &http.Client{Timeout: cfg.APITimeout},
		inFlight:    make(map[uuid.UUID]struct{}),
	}
}

// DelayHint returns the auto-print delay for a client platform. Mobile
// browsers need longer to lay the print window out.
func DelayHint(platform string) int {
	switch platform {
	case "ios":
		return 2000
	case "android":
		return 1500
	default:
		return 800
	}
}

func (s *PrintService) acquire(orderID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[orderID]; busy {
		return false
	}
	s.inFlight[orderID] = struct{}{}
	return true
}

func (s *PrintService) release(orderID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, orderID)
}

// PrintOrder renders the order's receipt and walks the dispatch chain. Only
// one job per order may run at a time; a second request while the first is
// still in flight is rejected rather than queued, since the cashier is
// almost certainly double-tapping.
func (s *PrintService) PrintOrder(ctx context.Context, req *PrintRequest) (*PrintResult, error) {
	if !s.acquire(req.OrderID) {
		return nil, apperror.ErrPrintInFlight
	}
	defer s.release(req.OrderID)

	r, err := s.receiptSvc.BuildFinal(ctx, req.OrderID, req.IsTitle, req.Cashier)
	if err != nil {
		return nil, err
	}

	order, err := s.orderSvc.GetOrder(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	result := s.dispatch(ctx, r, order, req)

	// The receipt went somewhere, so the sale is done: complete the order
	// and tell every terminal to refresh.
	if req.Kind != enum.ReceiptKindKitchen {
		if err := s.orderSvc.CompleteOnPrint(ctx, req.OrderID); err != nil {
			log.Printf("print: failed to complete order %s: %v", req.OrderID, err)
		}
		s.bus.Publish(events.Event{
			Name:    events.PrintCompleted,
			Payload: events.PrintCompletedPayload(true, true),
		})
		s.bus.Publish(events.Event{Name: events.RefreshOrders})
		s.bus.Publish(events.Event{Name: events.RefreshTables})
	}

	return result, nil
}

// dispatch walks the tiers in order and returns the first success. The HTML
// tier is written to local storage and cannot fail short of a dead disk.
func (s *PrintService) dispatch(ctx context.Context, r *entity.Receipt, order *entity.Order, req *PrintRequest) *PrintResult {
	if result, err := s.printViaRelay(ctx, r, order, req.Kind); err == nil {
		return result
	} else {
		log.Printf("print: relay tier failed for %s: %v", order.ReceiptNo, err)
	}

	if result, err := s.printViaAPI(ctx, r); err == nil {
		return result
	} else {
		log.Printf("print: api tier failed for %s: %v", order.ReceiptNo, err)
	}

	if result, err := s.writePDF(r, order); err == nil {
		return result
	} else {
		log.Printf("print: pdf tier failed for %s: %v", order.ReceiptNo, err)
	}

	return s.writeHTML(r, order, req.Platform)
}

// printTargets picks the configs a job fans out to. Kitchen slips go to the
// kitchen printers serving the table's floor plus the designated front-desk
// printer; front-desk receipts go to the front-desk printer alone.
func printTargets(configs []entity.PrinterConfig, kind enum.ReceiptKind, order *entity.Order) []printer.RelayTarget {
	var picked []entity.PrinterConfig
	if kind == enum.ReceiptKindKitchen {
		for _, cfg := range configs {
			switch {
			case cfg.IsKitchen:
				// Floor 0 on a kitchen printer means it takes every floor.
				if cfg.Floor == 0 || (order != nil && order.Table != nil && order.Table.Floor == cfg.Floor) {
					picked = append(picked, cfg)
				}
			case cfg.IsEmployee:
				picked = append(picked, cfg)
			}
		}
	} else {
		for _, cfg := range configs {
			if !cfg.IsKitchen && cfg.IsEmployee {
				picked = append(picked, cfg)
			}
		}
		if len(picked) == 0 {
			// No config designated; any active non-kitchen printer stands in.
			for _, cfg := range configs {
				if !cfg.IsKitchen {
					picked = append(picked, cfg)
				}
			}
		}
	}

	targets := make([]printer.RelayTarget, 0, len(picked))
	for _, cfg := range picked {
		copies := cfg.Copies
		if copies <= 0 {
			copies = 1
		}
		targets = append(targets, printer.RelayTarget{
			Name:       cfg.Name,
			IPAddress:  cfg.IPAddress,
			Port:       cfg.Port,
			MacAddress: cfg.MacAddress,
			Copies:     copies,
		})
	}
	return targets
}

// printViaRelay routes the job to the configured printers picked by
// printTargets.
func (s *PrintService) printViaRelay(ctx context.Context, r *entity.Receipt, order *entity.Order, kind enum.ReceiptKind) (*PrintResult, error) {
	if s.relay == nil {
		return nil, fmt.Errorf("relay not configured")
	}

	configs, err := s.printerRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	targets := printTargets(configs, kind, order)
	if len(targets) == 0 {
		return nil, fmt.Errorf("no matching printers configured")
	}

	doc := s.receiptSvc.Document(r)
	if !s.relay.Available(ctx) {
		// No relay agent on this LAN; dial the printers ourselves.
		return s.printDirect(targets, doc)
	}

	detail, err := s.relay.Submit(ctx, printer.RelayJob{
		Printers: targets,
		Content:  doc.PlainText(),
	})
	if err != nil {
		return nil, err
	}
	return &PrintResult{Method: PrintMethodRelay, Detail: detail}, nil
}

// printDirect sends raw ESC/POS bytes straight to each printer over TCP. It
// succeeds if at least one printer took the job.
func (s *PrintService) printDirect(targets []printer.RelayTarget, doc *printer.Document) (*PrintResult, error) {
	data := doc.Bytes()
	printed := 0
	for _, t := range targets {
		port := t.Port
		if port <= 0 {
			port = 9100
		}
		p := printer.NewNetworkPrinter(fmt.Sprintf("%s:%d", t.IPAddress, port))
		for i := 0; i < t.Copies; i++ {
			if err := p.Print(data); err != nil {
				log.Printf("print: direct print to %s failed: %v", t.Name, err)
				break
			}
			printed++
		}
	}
	if printed == 0 {
		return nil, fmt.Errorf("no printer accepted the job")
	}
	return &PrintResult{Method: PrintMethodRelay, Detail: fmt.Sprintf("printed %d copies directly", printed)}, nil
}

// printViaAPI posts the receipt to the vendor print endpoint.
func (s *PrintService) printViaAPI(ctx context.Context, r *entity.Receipt) (*PrintResult, error) {
	if s.cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("print api not configured")
	}

	doc := s.receiptSvc.Document(r)
	payload, err := json.Marshal(map[string]interface{}{
		"receipt_no": r.ReceiptNo,
		"content":    doc.PlainText(),
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIBaseURL+"/print", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("print api returned status %d", resp.StatusCode)
	}
	return &PrintResult{Method: PrintMethodAPI}, nil
}

func (s *PrintService) receiptsDir() (string, error) {
	dir := filepath.Join(s.storagePath, "receipts")
	return dir, os.MkdirAll(dir, 0o755)
}

func (s *PrintService) writePDF(r *entity.Receipt, order *entity.Order) (*PrintResult, error) {
	data, err := s.receiptSvc.PDF(r)
	if err != nil {
		return nil, err
	}
	dir, err := s.receiptsDir()
	if err != nil {
		return nil, err
	}
	name := order.ReceiptNo + ".pdf"
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return nil, err
	}
	return &PrintResult{
		Method:      PrintMethodPDF,
		ArtifactURL: "/files/receipts/" + name,
	}, nil
}

// writeHTML is the terminal tier. If even the file write fails the receipt
// is logged so the sale is never silently lost.
func (s *PrintService) writeHTML(r *entity.Receipt, order *entity.Order, platform string) *PrintResult {
	delay := DelayHint(platform)
	page, err := s.receiptSvc.HTML(r, true, delay)
	if err != nil {
		log.Printf("print: html render failed for %s: %v", order.ReceiptNo, err)
		return &PrintResult{Method: PrintMethodHTML, Detail: "render failed, receipt logged"}
	}

	dir, err := s.receiptsDir()
	if err == nil {
		name := order.ReceiptNo + ".html"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(page), 0o644); err == nil {
			return &PrintResult{
				Method:      PrintMethodHTML,
				ArtifactURL: "/files/receipts/" + name,
				DelayMS:     delay,
			}
		}
	}
	log.Printf("print: html artifact write failed for %s, content follows\n%s", order.ReceiptNo, page)
	return &PrintResult{Method: PrintMethodHTML, Detail: "artifact write failed, receipt logged", DelayMS: delay}
}

// PrintStatus reports the health of the dispatch chain for the settings UI.
type PrintStatus struct {
	RelayAvailable bool `json:"relay_available"`
	APIConfigured  bool `json:"api_configured"`
	ActivePrinters int  `json:"active_printers"`
}

// Status probes the relay and counts active printer configs.
func (s *PrintService) Status(ctx context.Context) (*PrintStatus, error) {
	configs, err := s.printerRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return &PrintStatus{
		RelayAvailable: s.relay != nil && s.relay.Available(ctx),
		APIConfigured:  s.cfg.APIBaseURL != "",
		ActivePrinters: len(configs),
	}, nil
}

// TestPrint sends a short test document through the relay tier only, so a
// store can verify printer configs without creating an order.
func (s *PrintService) TestPrint(ctx context.Context, printerID uuid.UUID) (*PrintResult, error) {
	cfg, err := s.printerRepo.GetByID(ctx, printerID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, apperror.NewNotFoundError("Printer")
	}
	doc := printer.NewDocument(42).
		SetAlign(printer.AlignCenter).
		SetBold(true).
		Text("PRINTER TEST").
		SetBold(false).
		Text(cfg.Name).
		FeedLines(2).
		Cut()

	copies := cfg.Copies
	if copies <= 0 {
		copies = 1
	}
	target := printer.RelayTarget{
		Name:      cfg.Name,
		IPAddress: cfg.IPAddress,
		Port:      cfg.Port,
		Copies:    copies,
	}

	if s.relay == nil || !s.relay.Available(ctx) {
		result, err := s.printDirect([]printer.RelayTarget{target}, doc)
		if err != nil {
			return nil, apperror.NewAppError(http.StatusServiceUnavailable, "Print relay is unreachable and direct print failed")
		}
		return result, nil
	}

	detail, err := s.relay.Submit(ctx, printer.RelayJob{
		Printers: []printer.RelayTarget{target},
		Content:  doc.PlainText(),
	})
	if err != nil {
		return nil, apperror.NewAppError(http.StatusBadGateway, "Test print failed: "+err.Error())
	}
	return &PrintResult{Method: PrintMethodRelay, Detail: detail}, nil
}
