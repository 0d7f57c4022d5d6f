package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/application/service"
	"github.com/phamtrung/pos-api/internal/presentation/http/dto/request"
	"github.com/phamtrung/pos-api/internal/presentation/http/dto/response"
)

// EInvoiceHandler handles e-invoice provider HTTP requests
type EInvoiceHandler struct {
	einvoiceService *service.EInvoiceService
}

// NewEInvoiceHandler creates a new e-invoice handler
func NewEInvoiceHandler(einvoiceService *service.EInvoiceService) *EInvoiceHandler {
	return &EInvoiceHandler{einvoiceService: einvoiceService}
}

// List handles listing e-invoice providers
func (h *EInvoiceHandler) List(c *gin.Context) {
	providers, err := h.einvoiceService.ListProviders(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Providers retrieved successfully", providers)
}

// Create handles registering an e-invoice provider
func (h *EInvoiceHandler) Create(c *gin.Context) {
	var req request.EInvoiceProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	provider, err := h.einvoiceService.CreateProvider(c.Request.Context(), &service.EInvoiceProviderInput{
		Name:         req.Name,
		Code:         req.Code,
		APIURL:       req.APIURL,
		APIKey:       req.APIKey,
		TemplateCode: req.TemplateCode,
		Serial:       req.Serial,
		IsActive:     req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Provider created successfully", provider)
}

// Update handles updating an e-invoice provider
func (h *EInvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid provider ID")
		return
	}

	var req request.EInvoiceProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	provider, err := h.einvoiceService.UpdateProvider(c.Request.Context(), id, &service.EInvoiceProviderInput{
		Name:         req.Name,
		Code:         req.Code,
		APIURL:       req.APIURL,
		APIKey:       req.APIKey,
		TemplateCode: req.TemplateCode,
		Serial:       req.Serial,
		IsActive:     req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Provider updated successfully", provider)
}

// Delete handles removing an e-invoice provider
func (h *EInvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid provider ID")
		return
	}

	if err := h.einvoiceService.DeleteProvider(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Provider deleted successfully", nil)
}
