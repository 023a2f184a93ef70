package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/techgrove/repairdesk/internal/domain/entity"
	"github.com/techgrove/repairdesk/internal/domain/enum"
	"github.com/techgrove/repairdesk/internal/domain/repository"
	"github.com/techgrove/repairdesk/pkg/apperror"
	"github.com/techgrove/repairdesk/pkg/pagination"
)

const defaultInvoicePrefix = "INV-"

// InvoiceService handles invoice numbering, totals and payment status
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	ticketRepo   repository.TicketRepository
	settingsRepo repository.SettingsRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	ticketRepo repository.TicketRepository,
	settingsRepo repository.SettingsRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		ticketRepo:   ticketRepo,
		settingsRepo: settingsRepo,
	}
}

// NextInvoiceNumber computes the next sequential number for the prefix:
// the numeric suffix of the most recent invoice under that prefix plus one,
// zero-padded to four digits. Always derived at creation time, never cached.
func (s *InvoiceService) NextInvoiceNumber(ctx context.Context, prefix string) (string, error) {
	if prefix == "" {
		setting, err := s.settingsRepo.Get(ctx, "invoice_prefix")
		if err != nil {
			return "", err
		}
		prefix = defaultInvoicePrefix
		if setting != nil && setting.Value != "" {
			prefix = setting.Value
		}
	}

	last, err := s.invoiceRepo.GetLastByPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}

	number := 1
	if last != nil {
		suffix := strings.TrimPrefix(last.InvoiceNumber, prefix)
		if n, parseErr := strconv.Atoi(suffix); parseErr == nil {
			number = n + 1
		}
	}

	return fmt.Sprintf("%s%04d", prefix, number), nil
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	TicketID   *uint
	CustomerID uint
	Amount     float64
	TaxAmount  float64
	DueDate    *time.Time
	Notes      *string
}

// CreateInvoice creates a Pending invoice with a freshly assigned number.
// TotalAmount is fixed at creation as amount plus tax.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.TicketID != nil {
		ticket, err := s.ticketRepo.GetByID(ctx, *input.TicketID)
		if err != nil {
			return nil, err
		}
		if ticket == nil {
			return nil, apperror.NewNotFoundError("Ticket")
		}
	}

	number, err := s.NextInvoiceNumber(ctx, "")
	if err != nil {
		return nil, err
	}

	amount := int64(input.Amount * 100)
	taxAmount := int64(input.TaxAmount * 100)

	invoice := &entity.Invoice{
		TicketID:      input.TicketID,
		CustomerID:    input.CustomerID,
		InvoiceNumber: number,
		Amount:        amount,
		TaxAmount:     taxAmount,
		TotalAmount:   amount + taxAmount,
		Status:        enum.InvoiceStatusPending,
		DueDate:       input.DueDate,
		Notes:         input.Notes,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	return s.GetInvoice(ctx, invoice.ID)
}

// GetInvoice retrieves an invoice by ID with customer and line items
func (s *InvoiceService) GetInvoice(ctx context.Context, id uint) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices with optional status and customer filters
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// UpdateInvoiceInput represents the update invoice input
type UpdateInvoiceInput struct {
	ID            uint
	Amount        *float64
	TaxAmount     *float64
	Status        *string
	DueDate       *time.Time
	PaidDate      *time.Time
	PaymentMethod *string
	Notes         *string
}

// UpdateInvoice overwrites supplied fields. When amount or tax is supplied
// the total is recomputed from the merged pair; an omitted side keeps its
// stored value.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, input *UpdateInvoiceInput) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if input.Amount != nil || input.TaxAmount != nil {
		if input.Amount != nil {
			invoice.Amount = int64(*input.Amount * 100)
		}
		if input.TaxAmount != nil {
			invoice.TaxAmount = int64(*input.TaxAmount * 100)
		}
		invoice.TotalAmount = invoice.Amount + invoice.TaxAmount
	}

	if input.Status != nil {
		status, err := enum.ParseInvoiceStatus(*input.Status)
		if err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
		invoice.Status = status
	}
	if input.DueDate != nil {
		invoice.DueDate = input.DueDate
	}
	if input.PaidDate != nil {
		invoice.PaidDate = input.PaidDate
	}
	if input.PaymentMethod != nil {
		invoice.PaymentMethod = input.PaymentMethod
	}
	if input.Notes != nil {
		invoice.Notes = input.Notes
	}

	// Save only the invoice row; preloaded associations stay untouched
	invoice.Customer = nil
	invoice.Items = nil
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	return s.GetInvoice(ctx, invoice.ID)
}

// AddLineItemInput represents the add line item input
type AddLineItemInput struct {
	InvoiceID   uint
	Description string
	Quantity    int
	UnitPrice   float64
}

// AddLineItem appends an informational line item. The parent invoice's
// amount is left alone; line items never drive the authoritative total.
func (s *InvoiceService) AddLineItem(ctx context.Context, input *AddLineItemInput) (*entity.InvoiceItem, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, apperror.NewBadRequestError("Description is required")
	}
	if input.Quantity < 1 {
		return nil, apperror.NewBadRequestError("Quantity must be at least 1")
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	unitPrice := int64(input.UnitPrice * 100)
	item := &entity.InvoiceItem{
		InvoiceID:   input.InvoiceID,
		Description: input.Description,
		Quantity:    input.Quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  unitPrice * int64(input.Quantity),
	}

	if err := s.invoiceRepo.AddItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// ListLineItems returns the line items for an invoice
func (s *InvoiceService) ListLineItems(ctx context.Context, invoiceID uint) ([]entity.InvoiceItem, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return s.invoiceRepo.ListItems(ctx, invoiceID)
}
