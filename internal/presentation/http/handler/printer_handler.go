package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/application/service"
	"github.com/phamtrung/pos-api/internal/presentation/http/dto/request"
	"github.com/phamtrung/pos-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer configuration HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterConfigService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterConfigService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// List handles listing configured printers
func (h *PrinterHandler) List(c *gin.Context) {
	printers, err := h.printerService.ListPrinters(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Printers retrieved successfully", printers)
}

// Create handles registering a printer
func (h *PrinterHandler) Create(c *gin.Context) {
	var req request.PrinterConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	printer, err := h.printerService.CreatePrinter(c.Request.Context(), &service.PrinterConfigInput{
		Name:        req.Name,
		PrinterType: req.PrinterType,
		IPAddress:   req.IPAddress,
		Port:        req.Port,
		Copies:      req.Copies,
		MacAddress:  req.MacAddress,
		IsActive:    req.IsActive,
		IsEmployee:  req.IsEmployee,
		IsKitchen:   req.IsKitchen,
		Floor:       req.Floor,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Printer created successfully", printer)
}

// Update handles updating a printer configuration
func (h *PrinterHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid printer ID")
		return
	}

	var req request.PrinterConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	printer, err := h.printerService.UpdatePrinter(c.Request.Context(), id, &service.PrinterConfigInput{
		Name:        req.Name,
		PrinterType: req.PrinterType,
		IPAddress:   req.IPAddress,
		Port:        req.Port,
		Copies:      req.Copies,
		MacAddress:  req.MacAddress,
		IsActive:    req.IsActive,
		IsEmployee:  req.IsEmployee,
		IsKitchen:   req.IsKitchen,
		Floor:       req.Floor,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Printer updated successfully", printer)
}

// Delete handles removing a printer configuration
func (h *PrinterHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid printer ID")
		return
	}

	if err := h.printerService.DeletePrinter(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Printer deleted successfully", nil)
}
