package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/phamtrung/pos-api/internal/domain/repository"
	"github.com/phamtrung/pos-api/pkg/money"
	"github.com/xuri/excelize/v2"
)

// ExportService produces spreadsheet exports of the sales history.
type ExportService struct {
	orderRepo repository.OrderRepository
}

// NewExportService creates a new export service
func NewExportService(orderRepo repository.OrderRepository) *ExportService {
	return &ExportService{orderRepo: orderRepo}
}

var exportHeaders = []string{
	"Receipt No", "Date", "Table", "Customer", "Payment", "Status",
	"Subtotal", "Discount", "Tax", "Total",
}

// ExportOrders writes every order matching the filters into an xlsx
// workbook. The same filters as the list endpoint apply, so what the cashier
// sees on screen is what lands in the file.
func (s *ExportService) ExportOrders(ctx context.Context, params *repository.OrderFilterParams) (*bytes.Buffer, string, error) {
	orders, err := s.orderRepo.ListAll(ctx, params)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Orders"
	f.SetSheetName("Sheet1", sheet)

	for col, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, order := range orders {
		row := i + 2
		table := ""
		if order.Table != nil {
			table = order.Table.Name
		}
		customer := order.CustomerName
		if customer == "" && order.Customer != nil {
			customer = order.Customer.Name
		}
		values := []interface{}{
			order.ReceiptNo,
			order.OrderDate.Format("02/01/2006 15:04"),
			table,
			customer,
			order.PaymentMethod,
			order.Status.String(),
			money.Format(order.SubTotal),
			money.Format(order.Discount),
			money.Format(order.Tax),
			money.Format(order.Total),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	name := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("20060102-150405"))
	return &buf, name, nil
}
