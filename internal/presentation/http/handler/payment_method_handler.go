package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/application/service"
	"github.com/phamtrung/pos-api/internal/presentation/http/dto/request"
	"github.com/phamtrung/pos-api/internal/presentation/http/dto/response"
)

// PaymentMethodHandler handles payment method HTTP requests
type PaymentMethodHandler struct {
	methodService *service.PaymentMethodService
}

// NewPaymentMethodHandler creates a new payment method handler
func NewPaymentMethodHandler(methodService *service.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{methodService: methodService}
}

// List handles listing payment methods
func (h *PaymentMethodHandler) List(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	methods, err := h.methodService.ListPaymentMethods(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment methods retrieved successfully", methods)
}

// Create handles creating a payment method
func (h *PaymentMethodHandler) Create(c *gin.Context) {
	var req request.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	method, err := h.methodService.CreatePaymentMethod(c.Request.Context(), &service.PaymentMethodInput{
		Name:     req.Name,
		Code:     req.Code,
		Position: req.Position,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment method created successfully", method)
}

// Update handles updating a payment method
func (h *PaymentMethodHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment method ID")
		return
	}

	var req request.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	method, err := h.methodService.UpdatePaymentMethod(c.Request.Context(), id, &service.PaymentMethodInput{
		Name:     req.Name,
		Code:     req.Code,
		Position: req.Position,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment method updated successfully", method)
}

// Delete handles removing a payment method
func (h *PaymentMethodHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment method ID")
		return
	}

	if err := h.methodService.DeletePaymentMethod(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment method deleted successfully", nil)
}
