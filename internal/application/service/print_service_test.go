package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/config"
	"github.com/phamtrung/pos-api/internal/domain/entity"
	"github.com/phamtrung/pos-api/internal/domain/enum"
	"github.com/phamtrung/pos-api/pkg/printer"
)

type emptyPrinterRepo struct{}

func (emptyPrinterRepo) Create(context.Context, *entity.PrinterConfig) error { return nil }
func (emptyPrinterRepo) GetByID(context.Context, uuid.UUID) (*entity.PrinterConfig, error) {
	return nil, nil
}
func (emptyPrinterRepo) ListActive(context.Context) ([]entity.PrinterConfig, error) {
	return nil, nil
}
func (emptyPrinterRepo) List(context.Context) ([]entity.PrinterConfig, error) { return nil, nil }
func (emptyPrinterRepo) Update(context.Context, *entity.PrinterConfig) error  { return nil }
func (emptyPrinterRepo) Delete(context.Context, uuid.UUID) error              { return nil }

func TestAcquireRejectsSecondJobForSameOrder(t *testing.T) {
	s := &PrintService{inFlight: make(map[uuid.UUID]struct{})}
	orderID := uuid.New()

	if !s.acquire(orderID) {
		t.Fatal("first acquire should succeed")
	}
	if s.acquire(orderID) {
		t.Fatal("second acquire for the same order should be rejected")
	}
	if !s.acquire(uuid.New()) {
		t.Fatal("a different order should not be blocked")
	}

	s.release(orderID)
	if !s.acquire(orderID) {
		t.Fatal("acquire should succeed again after release")
	}
}

func TestDelayHint(t *testing.T) {
	cases := []struct {
		platform string
		want     int
	}{
		{"ios", 2000},
		{"android", 1500},
		{"desktop", 800},
		{"", 800},
	}
	for _, tc := range cases {
		if got := DelayHint(tc.platform); got != tc.want {
			t.Errorf("DelayHint(%q) = %d, want %d", tc.platform, got, tc.want)
		}
	}
}

func TestPrintTargetsFrontDeskUsesDesignatedPrinter(t *testing.T) {
	configs := []entity.PrinterConfig{
		{Name: "Cashier", IsEmployee: true},
		{Name: "Spare"},
		{Name: "Kitchen 1", IsKitchen: true},
	}
	targets := printTargets(configs, enum.ReceiptKindFrontDesk, nil)
	if len(targets) != 1 || targets[0].Name != "Cashier" {
		t.Fatalf("expected only the designated front-desk printer, got %+v", targets)
	}
}

func TestPrintTargetsFrontDeskFallsBackWhenNoneDesignated(t *testing.T) {
	configs := []entity.PrinterConfig{
		{Name: "Spare"},
		{Name: "Kitchen 1", IsKitchen: true},
	}
	targets := printTargets(configs, enum.ReceiptKindFrontDesk, nil)
	if len(targets) != 1 || targets[0].Name != "Spare" {
		t.Fatalf("expected the non-kitchen printer to stand in, got %+v", targets)
	}
}

func TestPrintTargetsKitchenMatchesFloorAndIncludesFrontDesk(t *testing.T) {
	order := &entity.Order{Table: &entity.DiningTable{Floor: 2}}
	configs := []entity.PrinterConfig{
		{Name: "Cashier", IsEmployee: true},
		{Name: "Kitchen all floors", IsKitchen: true, Floor: 0},
		{Name: "Kitchen 2F", IsKitchen: true, Floor: 2},
		{Name: "Kitchen 3F", IsKitchen: true, Floor: 3},
	}
	targets := printTargets(configs, enum.ReceiptKindKitchen, order)

	got := make(map[string]bool, len(targets))
	for _, tgt := range targets {
		got[tgt.Name] = true
	}
	for _, want := range []string{"Cashier", "Kitchen all floors", "Kitchen 2F"} {
		if !got[want] {
			t.Errorf("kitchen job missing target %q, got %+v", want, targets)
		}
	}
	if got["Kitchen 3F"] {
		t.Errorf("kitchen job targeted a printer on another floor: %+v", targets)
	}
}

func TestDispatchFallsBackToPDFArtifact(t *testing.T) {
	dir := t.TempDir()
	receiptSvc := NewReceiptService(nil, nil, nil, 42)
	relay := printer.NewRelayClient("http://127.0.0.1:9", time.Second)
	s := NewPrintService(receiptSvc, nil, emptyPrinterRepo{}, relay, nil, config.PrintConfig{}, dir)

	r := &entity.Receipt{
		Header:     entity.ReceiptHeader{StoreName: "Quan An Ngon"},
		Title:      "PAYMENT INVOICE",
		ReceiptNo:  "RCP-DEADBEEF",
		Items:      []entity.ReceiptItem{{Name: "Pho bo", Quantity: 2, UnitPrice: 50000, Amount: 100000}},
		SubTotal:   100000,
		GrandTotal: 100000,
	}
	order := &entity.Order{ReceiptNo: "RCP-DEADBEEF"}

	res := s.dispatch(context.Background(), r, order, &PrintRequest{
		Kind:     enum.ReceiptKindFrontDesk,
		Platform: "desktop",
	})
	if res.Method != PrintMethodPDF {
		t.Fatalf("expected the pdf tier, got method %q (%s)", res.Method, res.Detail)
	}
	if res.ArtifactURL != "/files/receipts/RCP-DEADBEEF.pdf" {
		t.Errorf("unexpected artifact url %q", res.ArtifactURL)
	}
	if _, err := os.Stat(filepath.Join(dir, "receipts", "RCP-DEADBEEF.pdf")); err != nil {
		t.Errorf("pdf artifact not written: %v", err)
	}
}
