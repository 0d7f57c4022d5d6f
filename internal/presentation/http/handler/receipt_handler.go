package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/application/receipt"
	"github.com/phamtrung/pos-api/internal/application/service"
	"github.com/phamtrung/pos-api/internal/presentation/http/dto/request"
	"github.com/phamtrung/pos-api/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt computation and rendering requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Preview computes a receipt for an in-progress cart. Empty carts are fine;
// the response carries a placeholder the client can render as-is.
func (h *ReceiptHandler) Preview(c *gin.Context) {
	var req request.PreviewReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cashier := req.Cashier
	if cashier == "" {
		cashier = GetEmployeeName(c)
	}

	r, err := h.receiptService.BuildPreview(c.Request.Context(), &service.PreviewInput{
		Items:    req.Items,
		Discount: req.Discount,
		Total:    req.Total,
		IsTitle:  req.IsTitle,
		Cashier:  cashier,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt preview computed", gin.H{
		"receipt":  r,
		"transfer": receipt.Transfer(r),
	})
}

// Render returns the stored receipt for an order. The format query selects
// the representation: json (default), html, pdf, or text.
func (h *ReceiptHandler) Render(c *gin.Context) {
	h.render(c, c.DefaultQuery("format", "json"))
}

// RenderHTML serves the receipt as a standalone print page
func (h *ReceiptHandler) RenderHTML(c *gin.Context) {
	h.render(c, "html")
}

// RenderPDF serves the receipt as a thermal-format PDF
func (h *ReceiptHandler) RenderPDF(c *gin.Context) {
	h.render(c, "pdf")
}

func (h *ReceiptHandler) render(c *gin.Context, format string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var isTitle *bool
	if v := c.Query("is_title"); v != "" {
		b := v == "true" || v == "1"
		isTitle = &b
	}

	r, err := h.receiptService.BuildFinal(c.Request.Context(), id, isTitle, GetEmployeeName(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	switch format {
	case "html":
		autoPrint := c.Query("auto_print") == "true"
		delay := service.DelayHint(c.Query("platform"))
		html, err := h.receiptService.HTML(r, autoPrint, delay)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
	case "pdf":
		pdf, err := h.receiptService.PDF(r)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", "inline; filename="+r.ReceiptNo+".pdf")
		c.Data(http.StatusOK, "application/pdf", pdf)
	case "text":
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(h.receiptService.Document(r).PlainText()))
	default:
		response.OK(c, "Receipt retrieved successfully", r)
	}
}
