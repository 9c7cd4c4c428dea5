package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/confreg-invoicing/internal/application/service"
	"github.com/sangkips/confreg-invoicing/internal/presentation/http/dto/request"
	"github.com/sangkips/confreg-invoicing/internal/presentation/http/dto/response"
)

// InvoiceHandler handles invoice-related HTTP requests.
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Preview builds the FIRA order for a registration without sending it.
func (h *InvoiceHandler) Preview(c *gin.Context) {
	req, ok := bindInvoiceRequest(c)
	if !ok {
		return
	}

	response.OK(c, "Invoice preview built", h.invoiceService.Preview(req.ToEntity()))
}

// Submit builds the order and forwards it to FIRA.
func (h *InvoiceHandler) Submit(c *gin.Context) {
	req, ok := bindInvoiceRequest(c)
	if !ok {
		return
	}

	result, err := h.invoiceService.Submit(c.Request.Context(), req.ToEntity())
	if err != nil {
		_ = c.Error(err)
		response.Error(c, err)
		return
	}

	if result.Demo {
		response.OK(c, "Invoicing is not configured, order was not sent", result)
		return
	}

	response.Created(c, "Invoice order submitted", result)
}

// Status looks up an order previously sent to FIRA. Unknown orders and
// lookup failures both yield a null status.
func (h *InvoiceHandler) Status(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Order ID is required")
		return
	}

	status := h.invoiceService.Status(c.Request.Context(), id)
	if status == nil {
		response.OK(c, "Order status unavailable", nil)
		return
	}

	response.OK(c, "Order status retrieved", status)
}

func bindInvoiceRequest(c *gin.Context) (*request.InvoiceRequest, bool) {
	var req request.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return nil, false
	}

	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return nil, false
	}

	return &req, true
}
