package service

import (
	"context"
	"time"

	"github.com/techgrove/repairdesk/internal/domain/entity"
	"github.com/techgrove/repairdesk/internal/domain/repository"
	"github.com/techgrove/repairdesk/pkg/apperror"
)

// ReportService derives read-only metrics from the current record set. It
// never mutates; every figure is recomputed from stored rows on each call.
type ReportService struct {
	reportRepo    repository.ReportRepository
	customerRepo  repository.CustomerRepository
	inventoryRepo repository.InventoryRepository
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo repository.ReportRepository,
	customerRepo repository.CustomerRepository,
	inventoryRepo repository.InventoryRepository,
) *ReportService {
	return &ReportService{
		reportRepo:    reportRepo,
		customerRepo:  customerRepo,
		inventoryRepo: inventoryRepo,
	}
}

// CustomerAggregates returns the derived counters for one customer
func (s *ReportService) CustomerAggregates(ctx context.Context, customerID uint) (*repository.CustomerAggregates, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return s.reportRepo.CustomerAggregates(ctx, customerID)
}

// DashboardStats is the JSON shape of the dashboard headline numbers
type DashboardStats struct {
	TotalRevenue   float64 `json:"total_revenue"`
	ActiveTickets  int64   `json:"active_tickets"`
	TotalCustomers int64   `json:"total_customers"`
	CompletedToday int64   `json:"completed_today"`
}

// GetDashboardStats returns the dashboard statistics: revenue over Paid
// invoices, non-Completed ticket count, customer count, and tickets
// completed during the current local calendar day
func (s *ReportService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	revenue, err := s.reportRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = float64(revenue) / 100

	if stats.ActiveTickets, err = s.reportRepo.ActiveTickets(ctx); err != nil {
		return nil, err
	}
	if stats.TotalCustomers, err = s.reportRepo.TotalCustomers(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if stats.CompletedToday, err = s.reportRepo.CompletedBetween(ctx, startOfDay, startOfDay.AddDate(0, 0, 1)); err != nil {
		return nil, err
	}

	return stats, nil
}

// CustomerSummaries returns every customer, name order, with their derived
// ticket-count and total-spent aggregates attached
func (s *ReportService) CustomerSummaries(ctx context.Context) ([]entity.CustomerWithAggregates, error) {
	return s.reportRepo.ListWithAggregates(ctx)
}

// LowStockItems returns inventory at or below its reorder threshold,
// ordered by quantity ascending
func (s *ReportService) LowStockItems(ctx context.Context) ([]entity.InventoryItem, error) {
	return s.inventoryRepo.ListLowStock(ctx)
}

// TopCustomer is one row of the top-customers report with decimal revenue
type TopCustomer struct {
	CustomerID   uint    `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	Email        string  `json:"email"`
	TotalSpent   float64 `json:"total_spent"`
	TicketCount  int64   `json:"ticket_count"`
}

// TopCustomersByRevenue returns customers ordered by Paid-invoice revenue
// descending, ties broken by id ascending, truncated to limit
func (s *ReportService) TopCustomersByRevenue(ctx context.Context, limit int) ([]TopCustomer, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.reportRepo.TopCustomersByRevenue(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]TopCustomer, 0, len(rows))
	for _, row := range rows {
		result = append(result, TopCustomer{
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			Email:        row.Email,
			TotalSpent:   float64(row.TotalSpent) / 100,
			TicketCount:  row.TicketCount,
		})
	}
	return result, nil
}

// MonthlyRevenue sums Paid invoices by creation month within the given
// year. Every month 1-12 is present; months with no paid invoices report 0.
func (s *ReportService) MonthlyRevenue(ctx context.Context, year int) (map[int]float64, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(1, 0, 0)

	invoices, err := s.reportRepo.PaidInvoicesBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	revenue := make(map[int]float64, 12)
	for month := 1; month <= 12; month++ {
		revenue[month] = 0
	}
	for _, inv := range invoices {
		month := int(inv.CreatedAt.Month())
		revenue[month] += float64(inv.TotalAmount) / 100
	}

	return revenue, nil
}
