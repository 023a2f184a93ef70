package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_GetDashboardStats(t *testing.T) {
	svc := newServices(setupTestDB(t))
	ctx := context.Background()

	t.Run("empty store reports zeroes", func(t *testing.T) {
		stats, err := svc.Report.GetDashboardStats(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.TotalRevenue)
		assert.Zero(t, stats.ActiveTickets)
		assert.Zero(t, stats.TotalCustomers)
		assert.Zero(t, stats.CompletedToday)
	})

	t.Run("counts only paid revenue and active tickets", func(t *testing.T) {
		customer := createTestCustomer(t, svc, "Ivan")
		createTestTicket(t, svc, customer.ID)
		done := createTestTicket(t, svc, customer.ID)
		_, err := svc.Ticket.UpdateTicket(ctx, &UpdateTicketInput{
			ID:     done.ID,
			Status: strPtr("Completed"),
		})
		require.NoError(t, err)

		paid, err := svc.Invoice.CreateInvoice(ctx, &CreateInvoiceInput{
			CustomerID: customer.ID,
			Amount:     100,
		})
		require.NoError(t, err)
		_, err = svc.Invoice.UpdateInvoice(ctx, &UpdateInvoiceInput{
			ID:     paid.ID,
			Status: strPtr("Paid"),
		})
		require.NoError(t, err)

		// A pending invoice that must not contribute to revenue
		_, err = svc.Invoice.CreateInvoice(ctx, &CreateInvoiceInput{
			CustomerID: customer.ID,
			Amount:     999,
		})
		require.NoError(t, err)

		stats, err := svc.Report.GetDashboardStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 100.0, stats.TotalRevenue)
		assert.Equal(t, int64(1), stats.ActiveTickets)
		assert.Equal(t, int64(1), stats.TotalCustomers)
		assert.Equal(t, int64(1), stats.CompletedToday)
	})
}

func TestReportService_TopCustomersByRevenue(t *testing.T) {
	svc := newServices(setupTestDB(t))
	ctx := context.Background()

	big := createTestCustomer(t, svc, "Big Spender")
	small := createTestCustomer(t, svc, "Small Spender")
	zero := createTestCustomer(t, svc, "No Spend")

	payInvoice := func(t *testing.T, customerID uint, amount float64) {
		invoice, err := svc.Invoice.CreateInvoice(ctx, &CreateInvoiceInput{
			CustomerID: customerID,
			Amount:     amount,
		})
		require.NoError(t, err)
		_, err = svc.Invoice.UpdateInvoice(ctx, &UpdateInvoiceInput{
			ID:     invoice.ID,
			Status: strPtr("Paid"),
		})
		require.NoError(t, err)
	}

	payInvoice(t, small.ID, 50)
	payInvoice(t, big.ID, 200)
	payInvoice(t, big.ID, 100)

	t.Run("orders by paid revenue descending", func(t *testing.T) {
		top, err := svc.Report.TopCustomersByRevenue(ctx, 10)
		require.NoError(t, err)
		require.Len(t, top, 3)
		assert.Equal(t, big.ID, top[0].CustomerID)
		assert.Equal(t, 300.0, top[0].TotalSpent)
		assert.Equal(t, small.ID, top[1].CustomerID)
		assert.Equal(t, zero.ID, top[2].CustomerID)
		assert.Zero(t, top[2].TotalSpent)
	})

	t.Run("ties break by id ascending", func(t *testing.T) {
		other := createTestCustomer(t, svc, "Tied Spender")
		payInvoice(t, other.ID, 50)

		top, err := svc.Report.TopCustomersByRevenue(ctx, 10)
		require.NoError(t, err)
		require.Len(t, top, 4)
		assert.Equal(t, small.ID, top[1].CustomerID)
		assert.Equal(t, other.ID, top[2].CustomerID)
	})

	t.Run("limit truncates the list", func(t *testing.T) {
		top, err := svc.Report.TopCustomersByRevenue(ctx, 1)
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, big.ID, top[0].CustomerID)
	})
}

func TestReportService_MonthlyRevenue(t *testing.T) {
	svc := newServices(setupTestDB(t))
	ctx := context.Background()
	customer := createTestCustomer(t, svc, "Monthly")

	invoice, err := svc.Invoice.CreateInvoice(ctx, &CreateInvoiceInput{
		CustomerID: customer.ID,
		Amount:     120,
	})
	require.NoError(t, err)
	_, err = svc.Invoice.UpdateInvoice(ctx, &UpdateInvoiceInput{
		ID:     invoice.ID,
		Status: strPtr("Paid"),
	})
	require.NoError(t, err)

	t.Run("all twelve months are present", func(t *testing.T) {
		revenue, err := svc.Report.MonthlyRevenue(ctx, time.Now().Year())
		require.NoError(t, err)
		require.Len(t, revenue, 12)

		thisMonth := int(time.Now().Month())
		assert.Equal(t, 120.0, revenue[thisMonth])

		var total float64
		for _, v := range revenue {
			total += v
		}
		assert.Equal(t, 120.0, total)
	})

	t.Run("a year with no invoices is all zeroes", func(t *testing.T) {
		revenue, err := svc.Report.MonthlyRevenue(ctx, 2001)
		require.NoError(t, err)
		require.Len(t, revenue, 12)
		for month, v := range revenue {
			assert.Zerof(t, v, "month %d", month)
		}
	})
}

func TestReportService_CustomerSummaries(t *testing.T) {
	svc := newServices(setupTestDB(t))
	ctx := context.Background()

	walter := createTestCustomer(t, svc, "Walter")
	ann := createTestCustomer(t, svc, "Ann")
	createTestTicket(t, svc, walter.ID)

	invoice, err := svc.Invoice.CreateInvoice(ctx, &CreateInvoiceInput{
		CustomerID: walter.ID,
		Amount:     25,
	})
	require.NoError(t, err)
	_, err = svc.Invoice.UpdateInvoice(ctx, &UpdateInvoiceInput{
		ID:     invoice.ID,
		Status: strPtr("Paid"),
	})
	require.NoError(t, err)

	summaries, err := svc.Report.CustomerSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Name order, aggregates attached per customer
	assert.Equal(t, ann.ID, summaries[0].ID)
	assert.Zero(t, summaries[0].TicketCount)
	assert.Equal(t, walter.ID, summaries[1].ID)
	assert.Equal(t, int64(1), summaries[1].TicketCount)
	assert.Equal(t, int64(2500), summaries[1].TotalSpent)
}

func TestReportService_CustomerAggregates(t *testing.T) {
	svc := newServices(setupTestDB(t))
	ctx := context.Background()

	t.Run("unknown customer returns not found", func(t *testing.T) {
		_, err := svc.Report.CustomerAggregates(ctx, 9999)
		require.Error(t, err)
	})

	t.Run("aggregates are recomputed from current rows", func(t *testing.T) {
		customer := createTestCustomer(t, svc, "Recount")
		ticket := createTestTicket(t, svc, customer.ID)

		agg, err := svc.Report.CustomerAggregates(ctx, customer.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), agg.TicketCount)

		require.NoError(t, svc.Ticket.DeleteTicket(ctx, ticket.ID))

		agg, err = svc.Report.CustomerAggregates(ctx, customer.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), agg.TicketCount)
	})
}
