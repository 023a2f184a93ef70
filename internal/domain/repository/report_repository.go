package repository

import (
	"context"
	"time"

	"github.com/techgrove/repairdesk/internal/domain/entity"
)

// CustomerAggregates holds derived per-customer counters
type CustomerAggregates struct {
	TicketCount int64
	TotalSpent  int64 // cents, Paid invoices only
}

// TopCustomerRow represents one row of the top-customers-by-revenue report
type TopCustomerRow struct {
	CustomerID   uint   `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	TotalSpent   int64  `json:"-"` // cents
	TicketCount  int64  `json:"ticket_count"`
}

// ReportRepository defines read-only aggregation queries. Implementations
// never mutate state; every value is re-derived from current rows.
type ReportRepository interface {
	CustomerAggregates(ctx context.Context, customerID uint) (*CustomerAggregates, error)
	ListWithAggregates(ctx context.Context) ([]entity.CustomerWithAggregates, error)
	TotalRevenue(ctx context.Context) (int64, error)
	ActiveTickets(ctx context.Context) (int64, error)
	TotalCustomers(ctx context.Context) (int64, error)
	CompletedBetween(ctx context.Context, from, to time.Time) (int64, error)
	TopCustomersByRevenue(ctx context.Context, limit int) ([]TopCustomerRow, error)
	// PaidInvoicesBetween returns Paid invoices created in [from, to),
	// used for month-by-month revenue grouping.
	PaidInvoicesBetween(ctx context.Context, from, to time.Time) ([]entity.Invoice, error)
}
