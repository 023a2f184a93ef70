package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/techgrove/repairdesk/internal/application/service"
	"github.com/techgrove/repairdesk/internal/domain/enum"
	"github.com/techgrove/repairdesk/internal/domain/repository"
	"github.com/techgrove/repairdesk/internal/presentation/http/dto/response"
	"github.com/techgrove/repairdesk/pkg/pagination"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// List handles listing invoices with optional status and customer filters
func (h *InvoiceHandler) List(c *gin.Context) {
	page, perPage := parsePageParams(c)

	params := &repository.InvoiceFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
	}

	if raw := c.Query("status"); raw != "" {
		status, err := enum.ParseInvoiceStatus(raw)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		params.Status = &status
	}
	if customerID, ok := parseQueryID(c, "customer_id"); ok {
		params.CustomerID = &customerID
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Create handles creating an invoice. The invoice number is assigned by
// the server and never taken from the request.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req struct {
		TicketID   *uint      `json:"ticket_id"`
		CustomerID uint       `json:"customer_id" binding:"required"`
		Amount     float64    `json:"amount"`
		TaxAmount  float64    `json:"tax_amount"`
		DueDate    *time.Time `json:"due_date"`
		Notes      *string    `json:"notes"`
	}
	if !bindJSON(c, &req) {
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), &service.CreateInvoiceInput{
		TicketID:   req.TicketID,
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		TaxAmount:  req.TaxAmount,
		DueDate:    req.DueDate,
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// Get handles getting a single invoice with its line items
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// Update handles updating an invoice
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req struct {
		Amount        *float64   `json:"amount"`
		TaxAmount     *float64   `json:"tax_amount"`
		Status        *string    `json:"status"`
		DueDate       *time.Time `json:"due_date"`
		PaidDate      *time.Time `json:"paid_date"`
		PaymentMethod *string    `json:"payment_method"`
		Notes         *string    `json:"notes"`
	}
	if !bindJSON(c, &req) {
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), &service.UpdateInvoiceInput{
		ID:            id,
		Amount:        req.Amount,
		TaxAmount:     req.TaxAmount,
		Status:        req.Status,
		DueDate:       req.DueDate,
		PaidDate:      req.PaidDate,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice updated successfully", invoice)
}

// AddItem handles appending a line item to an invoice
func (h *InvoiceHandler) AddItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req struct {
		Description string  `json:"description" binding:"required"`
		Quantity    int     `json:"quantity"`
		UnitPrice   float64 `json:"unit_price"`
	}
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.invoiceService.AddLineItem(c.Request.Context(), &service.AddLineItemInput{
		InvoiceID:   id,
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Line item added successfully", item)
}

// ListItems handles listing an invoice's line items
func (h *InvoiceHandler) ListItems(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	items, err := h.invoiceService.ListLineItems(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line items retrieved successfully", items)
}
