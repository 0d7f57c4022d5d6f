package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/application/service"
	"github.com/phamtrung/pos-api/internal/presentation/http/dto/request"
	"github.com/phamtrung/pos-api/internal/presentation/http/dto/response"
)

// TableHandler handles dining table HTTP requests
type TableHandler struct {
	tableService *service.TableService
}

// NewTableHandler creates a new table handler
func NewTableHandler(tableService *service.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

// List handles the floor view: every table with its open order attached
func (h *TableHandler) List(c *gin.Context) {
	var floor *int
	if v := c.Query("floor"); v != "" {
		f, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(c, "Invalid floor")
			return
		}
		floor = &f
	}

	tables, err := h.tableService.ListTables(c.Request.Context(), floor)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tables retrieved successfully", tables)
}

// Get handles retrieving a single table
func (h *TableHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid table ID")
		return
	}

	table, err := h.tableService.GetTable(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Table retrieved successfully", table)
}

// Create handles creating a table
func (h *TableHandler) Create(c *gin.Context) {
	var req request.TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	table, err := h.tableService.CreateTable(c.Request.Context(), &service.TableInput{
		Name:     req.Name,
		Floor:    req.Floor,
		Seats:    req.Seats,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Table created successfully", table)
}

// Update handles updating a table
func (h *TableHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid table ID")
		return
	}

	var req request.TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	table, err := h.tableService.UpdateTable(c.Request.Context(), id, &service.TableInput{
		Name:     req.Name,
		Floor:    req.Floor,
		Seats:    req.Seats,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Table updated successfully", table)
}

// Delete handles deleting a table
func (h *TableHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid table ID")
		return
	}

	if err := h.tableService.DeleteTable(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Table deleted successfully", nil)
}
