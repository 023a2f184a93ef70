package repository

import (
	"context"

	"github.com/techgrove/repairdesk/internal/domain/entity"
	"github.com/techgrove/repairdesk/internal/domain/enum"
	"github.com/techgrove/repairdesk/pkg/pagination"
)

// TicketFilterParams represents filter parameters for ticket listings
type TicketFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.TicketStatus
	CustomerID *uint
}

// TicketRepository defines the interface for ticket data operations
type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	GetByID(ctx context.Context, id uint) (*entity.Ticket, error)
	Update(ctx context.Context, ticket *entity.Ticket) error
	// UpdateWithHistory persists the ticket update and the history entry as
	// a single atomic unit: both succeed or both fail.
	UpdateWithHistory(ctx context.Context, ticket *entity.Ticket, history *entity.TicketHistory) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *TicketFilterParams) ([]entity.Ticket, int64, error)
	History(ctx context.Context, ticketID uint) ([]entity.TicketHistory, error)
}
