package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/application/service"
	"github.com/phamtrung/pos-api/internal/domain/enum"
	"github.com/phamtrung/pos-api/internal/presentation/http/dto/request"
	"github.com/phamtrung/pos-api/internal/presentation/http/dto/response"
)

// PrintHandler handles print dispatch HTTP requests
type PrintHandler struct {
	printService *service.PrintService
}

// NewPrintHandler creates a new print handler
func NewPrintHandler(printService *service.PrintService) *PrintHandler {
	return &PrintHandler{printService: printService}
}

// Print dispatches an order's receipt to the best available output. A second
// request for the same order while one is running gets a 409.
func (h *PrintHandler) Print(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	// The body is optional; an empty POST prints a front-desk receipt.
	var req request.PrintOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
	}

	kind := enum.ReceiptKindFrontDesk
	if req.Kind == string(enum.ReceiptKindKitchen) {
		kind = enum.ReceiptKindKitchen
	}

	result, err := h.printService.PrintOrder(c.Request.Context(), &service.PrintRequest{
		OrderID:  id,
		Kind:     kind,
		Platform: req.Platform,
		Cashier:  GetEmployeeName(c),
		IsTitle:  req.IsTitle,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Print dispatched", result)
}

// Status reports dispatch chain health for the settings console
func (h *PrintHandler) Status(c *gin.Context) {
	status, err := h.printService.Status(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Print status retrieved successfully", status)
}

// TestPrint sends a short test slip to one configured printer
func (h *PrintHandler) TestPrint(c *gin.Context) {
	var req struct {
		PrinterID uuid.UUID `json:"printer_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.printService.TestPrint(c.Request.Context(), req.PrinterID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test print dispatched", result)
}
