package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techgrove/repairdesk/pkg/apperror"
	"github.com/techgrove/repairdesk/pkg/pagination"
)

func TestCustomerService_CreateCustomer(t *testing.T) {
	svc := newServices(setupTestDB(t))
	ctx := context.Background()

	t.Run("creates customer with generated id", func(t *testing.T) {
		customer, err := svc.Customer.CreateCustomer(ctx, &CreateCustomerInput{
			Name:  "Alice Johnson",
			Email: strPtr("alice@example.com"),
		})
		require.NoError(t, err)
		assert.NotZero(t, customer.ID)
		assert.Equal(t, "Alice Johnson", customer.Name)
		assert.False(t, customer.CreatedAt.IsZero())
	})

	t.Run("ids are strictly increasing", func(t *testing.T) {
		first := createTestCustomer(t, svc, "First")
		second := createTestCustomer(t, svc, "Second")
		assert.Greater(t, second.ID, first.ID)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := svc.Customer.CreateCustomer(ctx, &CreateCustomerInput{Name: "   "})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})
}

func TestCustomerService_GetCustomer(t *testing.T) {
	svc := newServices(setupTestDB(t))
	ctx := context.Background()

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := svc.Customer.GetCustomer(ctx, 9999)
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("new customer has zero aggregates", func(t *testing.T) {
		created := createTestCustomer(t, svc, "Bob")

		got, err := svc.Customer.GetCustomer(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.TicketCount)
		assert.Equal(t, int64(0), got.TotalSpent)
	})

	t.Run("aggregates reflect tickets and paid invoices", func(t *testing.T) {
		created := createTestCustomer(t, svc, "Carol")
		createTestTicket(t, svc, created.ID)
		createTestTicket(t, svc, created.ID)

		invoice, err := svc.Invoice.CreateInvoice(ctx, &CreateInvoiceInput{
			CustomerID: created.ID,
			Amount:     100.00,
			TaxAmount:  8.50,
		})
		require.NoError(t, err)

		// Pending invoices are not counted as spend
		got, err := svc.Customer.GetCustomer(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.TicketCount)
		assert.Equal(t, int64(0), got.TotalSpent)

		_, err = svc.Invoice.UpdateInvoice(ctx, &UpdateInvoiceInput{
			ID:     invoice.ID,
			Status: strPtr("Paid"),
		})
		require.NoError(t, err)

		got, err = svc.Customer.GetCustomer(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(10850), got.TotalSpent)
	})
}

func TestCustomerService_ListCustomers(t *testing.T) {
	svc := newServices(setupTestDB(t))
	ctx := context.Background()

	createTestCustomer(t, svc, "Zed")
	createTestCustomer(t, svc, "Amy")
	createTestCustomer(t, svc, "Mike")

	t.Run("lists customers ordered by name", func(t *testing.T) {
		result, err := svc.Customer.ListCustomers(ctx, &pagination.PaginationParams{Page: 1, PerPage: 10}, "")
		require.NoError(t, err)
		require.Len(t, result.Items, 3)
		assert.Equal(t, "Amy", result.Items[0].Name)
		assert.Equal(t, "Zed", result.Items[2].Name)
		assert.Equal(t, int64(3), result.Pagination.Total)
	})

	t.Run("search narrows the listing", func(t *testing.T) {
		result, err := svc.Customer.ListCustomers(ctx, &pagination.PaginationParams{Page: 1, PerPage: 10}, "Mik")
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Mike", result.Items[0].Name)
	})
}

func TestCustomerService_DeleteCustomer(t *testing.T) {
	svc := newServices(setupTestDB(t))
	ctx := context.Background()

	t.Run("refuses to delete customer with tickets", func(t *testing.T) {
		customer := createTestCustomer(t, svc, "HasTickets")
		ticket := createTestTicket(t, svc, customer.ID)

		err := svc.Customer.DeleteCustomer(ctx, customer.ID)
		require.Error(t, err)
		assert.True(t, apperror.IsConstraint(err))

		// Customer is untouched by the refused delete
		got, err := svc.Customer.GetCustomer(ctx, customer.ID)
		require.NoError(t, err)
		assert.Equal(t, "HasTickets", got.Name)

		// Once the ticket is gone the delete goes through
		require.NoError(t, svc.Ticket.DeleteTicket(ctx, ticket.ID))
		require.NoError(t, svc.Customer.DeleteCustomer(ctx, customer.ID))

		_, err = svc.Customer.GetCustomer(ctx, customer.ID)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("delete unknown customer returns not found", func(t *testing.T) {
		err := svc.Customer.DeleteCustomer(ctx, 9999)
		assert.True(t, apperror.IsNotFound(err))
	})
}
