package repository

import (
	"context"

	"github.com/techgrove/repairdesk/internal/domain/entity"
	"github.com/techgrove/repairdesk/internal/domain/enum"
	"github.com/techgrove/repairdesk/pkg/pagination"
)

// InvoiceFilterParams represents filter parameters for invoice listings
type InvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.InvoiceStatus
	CustomerID *uint
}

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uint) (*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	// GetLastByPrefix returns the most recently created invoice (by id
	// descending) whose number starts with the prefix, or nil when none
	// exists. Feeds sequential invoice numbering.
	GetLastByPrefix(ctx context.Context, prefix string) (*entity.Invoice, error)
	AddItem(ctx context.Context, item *entity.InvoiceItem) error
	ListItems(ctx context.Context, invoiceID uint) ([]entity.InvoiceItem, error)
}
