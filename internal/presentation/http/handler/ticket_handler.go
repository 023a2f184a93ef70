package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/techgrove/repairdesk/internal/application/service"
	"github.com/techgrove/repairdesk/internal/domain/enum"
	"github.com/techgrove/repairdesk/internal/domain/repository"
	"github.com/techgrove/repairdesk/internal/presentation/http/dto/response"
	"github.com/techgrove/repairdesk/pkg/pagination"
)

// TicketHandler handles repair ticket HTTP requests
type TicketHandler struct {
	ticketService *service.TicketService
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService *service.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// List handles listing tickets with optional status and customer filters
func (h *TicketHandler) List(c *gin.Context) {
	page, perPage := parsePageParams(c)

	params := &repository.TicketFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
	}

	if raw := c.Query("status"); raw != "" {
		status, err := enum.ParseTicketStatus(raw)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		params.Status = &status
	}
	if customerID, ok := parseQueryID(c, "customer_id"); ok {
		params.CustomerID = &customerID
	}

	result, err := h.ticketService.ListTickets(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Tickets retrieved successfully", result)
}

// ListByCustomer handles listing one customer's tickets
func (h *TicketHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	page, perPage := parsePageParams(c)
	result, err := h.ticketService.ListTickets(c.Request.Context(), &repository.TicketFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		CustomerID: &customerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Tickets retrieved successfully", result)
}

// Create handles opening a new repair ticket
func (h *TicketHandler) Create(c *gin.Context) {
	var req struct {
		CustomerID       uint     `json:"customer_id" binding:"required"`
		DeviceType       string   `json:"device_type" binding:"required"`
		DeviceModel      *string  `json:"device_model"`
		IssueDescription string   `json:"issue_description" binding:"required"`
		Status           *string  `json:"status"`
		Priority         *string  `json:"priority"`
		EstimatedCost    *float64 `json:"estimated_cost"`
		Technician       *string  `json:"technician"`
		Notes            *string  `json:"notes"`
	}
	if !bindJSON(c, &req) {
		return
	}

	ticket, err := h.ticketService.CreateTicket(c.Request.Context(), &service.CreateTicketInput{
		CustomerID:       req.CustomerID,
		DeviceType:       req.DeviceType,
		DeviceModel:      req.DeviceModel,
		IssueDescription: req.IssueDescription,
		Status:           req.Status,
		Priority:         req.Priority,
		EstimatedCost:    req.EstimatedCost,
		Technician:       req.Technician,
		Notes:            req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Ticket created successfully", ticket)
}

// Get handles getting a single ticket
func (h *TicketHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid ticket ID")
		return
	}

	ticket, err := h.ticketService.GetTicket(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket retrieved successfully", ticket)
}

// Update handles updating a ticket. Status changes are recorded in the
// ticket's history.
func (h *TicketHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid ticket ID")
		return
	}

	var req struct {
		DeviceType       *string  `json:"device_type"`
		DeviceModel      *string  `json:"device_model"`
		IssueDescription *string  `json:"issue_description"`
		Status           *string  `json:"status"`
		Priority         *string  `json:"priority"`
		EstimatedCost    *float64 `json:"estimated_cost"`
		ActualCost       *float64 `json:"actual_cost"`
		Technician       *string  `json:"technician"`
		Notes            *string  `json:"notes"`
	}
	if !bindJSON(c, &req) {
		return
	}

	ticket, err := h.ticketService.UpdateTicket(c.Request.Context(), &service.UpdateTicketInput{
		ID:               id,
		DeviceType:       req.DeviceType,
		DeviceModel:      req.DeviceModel,
		IssueDescription: req.IssueDescription,
		Status:           req.Status,
		Priority:         req.Priority,
		EstimatedCost:    req.EstimatedCost,
		ActualCost:       req.ActualCost,
		Technician:       req.Technician,
		Notes:            req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket updated successfully", ticket)
}

// History handles listing a ticket's status history, most recent first
func (h *TicketHandler) History(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid ticket ID")
		return
	}

	history, err := h.ticketService.History(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket history retrieved successfully", history)
}

// Delete handles deleting a ticket
func (h *TicketHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid ticket ID")
		return
	}

	if err := h.ticketService.DeleteTicket(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
