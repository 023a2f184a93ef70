package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/techgrove/repairdesk/internal/domain/entity"
	"github.com/techgrove/repairdesk/internal/domain/enum"
	domainRepo "github.com/techgrove/repairdesk/internal/domain/repository"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CustomerAggregates(ctx context.Context, customerID uint) (*domainRepo.CustomerAggregates, error) {
	agg := &domainRepo.CustomerAggregates{}

	err := r.db.WithContext(ctx).Model(&entity.Ticket{}).
		Where("customer_id = ?", customerID).
		Count(&agg.TicketCount).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM invoices
		WHERE customer_id = ? AND status = ?
	`, customerID, enum.InvoiceStatusPaid).Scan(&agg.TotalSpent).Error
	if err != nil {
		return nil, err
	}

	return agg, nil
}

func (r *reportRepository) ListWithAggregates(ctx context.Context) ([]entity.CustomerWithAggregates, error) {
	var customers []entity.Customer
	err := r.db.WithContext(ctx).Order("name ASC").Find(&customers).Error
	if err != nil {
		return nil, err
	}

	type countRow struct {
		CustomerID uint
		N          int64
	}
	var ticketCounts []countRow
	err = r.db.WithContext(ctx).Raw(`
		SELECT customer_id, COUNT(*) AS n
		FROM tickets
		GROUP BY customer_id
	`).Scan(&ticketCounts).Error
	if err != nil {
		return nil, err
	}

	type sumRow struct {
		CustomerID uint
		Total      int64
	}
	var spentSums []sumRow
	err = r.db.WithContext(ctx).Raw(`
		SELECT customer_id, COALESCE(SUM(total_amount), 0) AS total
		FROM invoices
		WHERE status = ?
		GROUP BY customer_id
	`, enum.InvoiceStatusPaid).Scan(&spentSums).Error
	if err != nil {
		return nil, err
	}

	tickets := make(map[uint]int64, len(ticketCounts))
	for _, row := range ticketCounts {
		tickets[row.CustomerID] = row.N
	}
	spent := make(map[uint]int64, len(spentSums))
	for _, row := range spentSums {
		spent[row.CustomerID] = row.Total
	}

	result := make([]entity.CustomerWithAggregates, 0, len(customers))
	for _, c := range customers {
		result = append(result, entity.CustomerWithAggregates{
			Customer:    c,
			TicketCount: tickets[c.ID],
			TotalSpent:  spent[c.ID],
		})
	}
	return result, nil
}

func (r *reportRepository) TotalRevenue(ctx context.Context) (int64, error) {
	var revenue int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM invoices
		WHERE status = ?
	`, enum.InvoiceStatusPaid).Scan(&revenue).Error
	return revenue, err
}

func (r *reportRepository) ActiveTickets(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Ticket{}).
		Where("status <> ?", enum.TicketStatusCompleted).
		Count(&count).Error
	return count, err
}

func (r *reportRepository) TotalCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).Count(&count).Error
	return count, err
}

func (r *reportRepository) CompletedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Ticket{}).
		Where("status = ? AND completed_at >= ? AND completed_at < ?",
			enum.TicketStatusCompleted, from, to).
		Count(&count).Error
	return count, err
}

func (r *reportRepository) TopCustomersByRevenue(ctx context.Context, limit int) ([]domainRepo.TopCustomerRow, error) {
	var rows []domainRepo.TopCustomerRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id AS customer_id,
			c.name AS customer_name,
			COALESCE(c.email, '') AS email,
			COALESCE((SELECT SUM(i.total_amount) FROM invoices i
				WHERE i.customer_id = c.id AND i.status = ?), 0) AS total_spent,
			(SELECT COUNT(*) FROM tickets t WHERE t.customer_id = c.id) AS ticket_count
		FROM customers c
		ORDER BY total_spent DESC, c.id ASC
		LIMIT ?
	`, enum.InvoiceStatusPaid, limit).Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) PaidInvoicesBetween(ctx context.Context, from, to time.Time) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at >= ? AND created_at < ?",
			enum.InvoiceStatusPaid, from, to).
		Find(&invoices).Error
	return invoices, err
}
