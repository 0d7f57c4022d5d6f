package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/application/service"
	"github.com/phamtrung/pos-api/internal/domain/enum"
	"github.com/phamtrung/pos-api/internal/domain/repository"
	"github.com/phamtrung/pos-api/internal/presentation/http/dto/request"
	"github.com/phamtrung/pos-api/internal/presentation/http/dto/response"
	"github.com/phamtrung/pos-api/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService  *service.OrderService
	exportService *service.ExportService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, exportService *service.ExportService) *OrderHandler {
	return &OrderHandler{orderService: orderService, exportService: exportService}
}

// Create handles checkout of a cart into a persisted order
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateOrderInput{
		TableID:         req.TableID,
		CustomerID:      req.CustomerID,
		EmployeeID:      req.EmployeeID,
		CustomerName:    req.CustomerName,
		CustomerTaxCode: req.CustomerTaxCode,
		PaymentMethod:   req.PaymentMethod,
		Discount:        req.Discount,
		Note:            req.Note,
	}
	if input.EmployeeID == nil {
		input.EmployeeID = GetEmployeeID(c)
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// List handles listing orders (supports both page-based and cursor-based pagination)
func (h *OrderHandler) List(c *gin.Context) {
	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c)
		return
	}

	var filter request.OrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}
	if err := applyOrderFilter(&filter, params); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Orders retrieved successfully", result)
}

// listWithCursor handles listing orders with cursor-based pagination
func (h *OrderHandler) listWithCursor(c *gin.Context) {
	var filter request.OrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	limit := 15
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	direction := c.DefaultQuery("direction", "next")

	params := &repository.OrderCursorFilterParams{
		Cursor: &pagination.CursorParams{
			Cursor:    c.Query("cursor"),
			Direction: pagination.CursorDirection(direction),
			Limit:     limit,
		},
		Search: filter.Search,
	}
	pageParams := &repository.OrderFilterParams{}
	if err := applyOrderFilter(&filter, pageParams); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	params.Status = pageParams.Status
	params.TableID = pageParams.TableID
	params.CustomerID = pageParams.CustomerID
	params.StartDate = pageParams.StartDate
	params.EndDate = pageParams.EndDate

	result, err := h.orderService.ListOrdersWithCursor(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithCursor(c, http.StatusOK, "Orders retrieved successfully", result)
}

// Get handles retrieving a single order with its items
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// UpdateStatus handles changing an order's lifecycle status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, err := parseOrderStatus(req.Status)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", order)
}

// Cancel handles cancelling a pending order
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.CancelOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order cancelled successfully", order)
}

// Export streams the filtered order list as an xlsx workbook
func (h *OrderHandler) Export(c *gin.Context) {
	var filter request.OrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.OrderFilterParams{
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}
	if err := applyOrderFilter(&filter, params); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	buf, filename, err := h.exportService.ExportOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func applyOrderFilter(filter *request.OrderFilterRequest, params *repository.OrderFilterParams) error {
	if filter.Status != "" {
		status, err := parseOrderStatus(filter.Status)
		if err != nil {
			return err
		}
		params.Status = &status
	}
	if filter.TableID != "" {
		tableID, err := uuid.Parse(filter.TableID)
		if err != nil {
			return fmt.Errorf("invalid table_id")
		}
		params.TableID = &tableID
	}
	if filter.CustomerID != "" {
		customerID, err := uuid.Parse(filter.CustomerID)
		if err != nil {
			return fmt.Errorf("invalid customer_id")
		}
		params.CustomerID = &customerID
	}
	if filter.StartDate != "" {
		start, err := time.Parse("2006-01-02", filter.StartDate)
		if err != nil {
			return fmt.Errorf("invalid start_date, expected YYYY-MM-DD")
		}
		params.StartDate = &start
	}
	if filter.EndDate != "" {
		end, err := time.Parse("2006-01-02", filter.EndDate)
		if err != nil {
			return fmt.Errorf("invalid end_date, expected YYYY-MM-DD")
		}
		// Make the end date inclusive of the whole day.
		end = end.Add(24*time.Hour - time.Nanosecond)
		params.EndDate = &end
	}
	return nil
}

func parseOrderStatus(s string) (enum.OrderStatus, error) {
	switch s {
	case "pending":
		return enum.OrderStatusPending, nil
	case "completed":
		return enum.OrderStatusCompleted, nil
	case "cancelled":
		return enum.OrderStatusCancelled, nil
	}
	return enum.OrderStatusPending, fmt.Errorf("unknown order status %q", s)
}
