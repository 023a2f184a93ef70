package service

import (
	"context"
	"strings"
	"time"

	"github.com/techgrove/repairdesk/internal/domain/entity"
	"github.com/techgrove/repairdesk/internal/domain/enum"
	"github.com/techgrove/repairdesk/internal/domain/repository"
	"github.com/techgrove/repairdesk/pkg/apperror"
	"github.com/techgrove/repairdesk/pkg/pagination"
)

// TicketService owns the repair-ticket lifecycle: creation, status
// transitions with their history log, and completion stamping
type TicketService struct {
	ticketRepo   repository.TicketRepository
	customerRepo repository.CustomerRepository
}

// NewTicketService creates a new ticket service
func NewTicketService(ticketRepo repository.TicketRepository, customerRepo repository.CustomerRepository) *TicketService {
	return &TicketService{ticketRepo: ticketRepo, customerRepo: customerRepo}
}

// CreateTicketInput represents the create ticket input
type CreateTicketInput struct {
	CustomerID       uint
	DeviceType       string
	DeviceModel      *string
	IssueDescription string
	Status           *string
	Priority         *string
	EstimatedCost    *float64
	Technician       *string
	Notes            *string
}

// CreateTicket creates a new ticket for an existing customer
func (s *TicketService) CreateTicket(ctx context.Context, input *CreateTicketInput) (*entity.Ticket, error) {
	if strings.TrimSpace(input.DeviceType) == "" {
		return nil, apperror.NewBadRequestError("Device type is required")
	}
	if strings.TrimSpace(input.IssueDescription) == "" {
		return nil, apperror.NewBadRequestError("Issue description is required")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	status := enum.TicketStatusOpen
	if input.Status != nil {
		status, err = enum.ParseTicketStatus(*input.Status)
		if err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
	}

	priority := enum.PriorityMedium
	if input.Priority != nil {
		priority, err = enum.ParsePriority(*input.Priority)
		if err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
	}

	ticket := &entity.Ticket{
		CustomerID:       input.CustomerID,
		DeviceType:       input.DeviceType,
		DeviceModel:      input.DeviceModel,
		IssueDescription: input.IssueDescription,
		Status:           status,
		Priority:         priority,
		Technician:       input.Technician,
		Notes:            input.Notes,
	}
	if input.EstimatedCost != nil {
		ticket.EstimatedCost = int64(*input.EstimatedCost * 100)
	}
	if status == enum.TicketStatusCompleted {
		now := time.Now()
		ticket.CompletedAt = &now
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	return s.GetTicket(ctx, ticket.ID)
}

// GetTicket retrieves a ticket by ID, including its customer details
func (s *TicketService) GetTicket(ctx context.Context, id uint) (*entity.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperror.NewNotFoundError("Ticket")
	}
	return ticket, nil
}

// ListTickets lists tickets with optional status and customer filters
func (s *TicketService) ListTickets(ctx context.Context, params *repository.TicketFilterParams) (*pagination.PaginatedResult[entity.Ticket], error) {
	tickets, total, err := s.ticketRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(tickets, pag), nil
}

// UpdateTicketInput represents the update ticket input
type UpdateTicketInput struct {
	ID               uint
	DeviceType       *string
	DeviceModel      *string
	IssueDescription *string
	Status           *string
	Priority         *string
	EstimatedCost    *float64
	ActualCost       *float64
	Technician       *string
	Notes            *string
}

// UpdateTicket updates a ticket. A status change appends one history entry,
// written atomically with the ticket row. The first transition into
// Completed stamps CompletedAt; reopening never clears or overwrites it.
func (s *TicketService) UpdateTicket(ctx context.Context, input *UpdateTicketInput) (*entity.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperror.NewNotFoundError("Ticket")
	}

	if input.DeviceType != nil {
		ticket.DeviceType = *input.DeviceType
	}
	if input.DeviceModel != nil {
		ticket.DeviceModel = input.DeviceModel
	}
	if input.IssueDescription != nil {
		ticket.IssueDescription = *input.IssueDescription
	}
	if input.Priority != nil {
		priority, err := enum.ParsePriority(*input.Priority)
		if err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
		ticket.Priority = priority
	}
	if input.EstimatedCost != nil {
		ticket.EstimatedCost = int64(*input.EstimatedCost * 100)
	}
	if input.ActualCost != nil {
		ticket.ActualCost = int64(*input.ActualCost * 100)
	}
	if input.Technician != nil {
		ticket.Technician = input.Technician
	}
	if input.Notes != nil {
		ticket.Notes = input.Notes
	}

	statusFrom := ticket.Status
	statusChanged := false
	if input.Status != nil {
		status, err := enum.ParseTicketStatus(*input.Status)
		if err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
		if status != ticket.Status {
			statusChanged = true
			ticket.Status = status
			if status == enum.TicketStatusCompleted && ticket.CompletedAt == nil {
				now := time.Now()
				ticket.CompletedAt = &now
			}
		}
	}

	if statusChanged {
		history := &entity.TicketHistory{
			TicketID:   ticket.ID,
			StatusFrom: statusFrom,
			StatusTo:   ticket.Status,
		}
		if err := s.ticketRepo.UpdateWithHistory(ctx, ticket, history); err != nil {
			return nil, err
		}
	} else {
		if err := s.ticketRepo.Update(ctx, ticket); err != nil {
			return nil, err
		}
	}

	return s.GetTicket(ctx, ticket.ID)
}

// History returns a ticket's status-change log, most recent first
func (s *TicketService) History(ctx context.Context, ticketID uint) ([]entity.TicketHistory, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperror.NewNotFoundError("Ticket")
	}
	return s.ticketRepo.History(ctx, ticketID)
}

// DeleteTicket removes a ticket
func (s *TicketService) DeleteTicket(ctx context.Context, id uint) error {
	ticket, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ticket == nil {
		return apperror.NewNotFoundError("Ticket")
	}
	return s.ticketRepo.Delete(ctx, id)
}
