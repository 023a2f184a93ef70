package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techgrove/repairdesk/internal/domain/enum"
	"github.com/techgrove/repairdesk/internal/domain/repository"
	"github.com/techgrove/repairdesk/pkg/apperror"
	"github.com/techgrove/repairdesk/pkg/pagination"
)

func TestTicketService_CreateTicket(t *testing.T) {
	svc := newServices(setupTestDB(t))
	ctx := context.Background()
	customer := createTestCustomer(t, svc, "Dana")

	t.Run("defaults to Open status and Medium priority", func(t *testing.T) {
		ticket := createTestTicket(t, svc, customer.ID)
		assert.Equal(t, enum.TicketStatusOpen, ticket.Status)
		assert.Equal(t, enum.PriorityMedium, ticket.Priority)
		assert.Nil(t, ticket.CompletedAt)
	})

	t.Run("loads the owning customer", func(t *testing.T) {
		ticket := createTestTicket(t, svc, customer.ID)
		require.NotNil(t, ticket.Customer)
		assert.Equal(t, "Dana", ticket.Customer.Name)
	})

	t.Run("rejects unknown customer", func(t *testing.T) {
		_, err := svc.Ticket.CreateTicket(ctx, &CreateTicketInput{
			CustomerID:       9999,
			DeviceType:       "Phone",
			IssueDescription: "Cracked screen",
		})
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := svc.Ticket.CreateTicket(ctx, &CreateTicketInput{
			CustomerID:       customer.ID,
			DeviceType:       "Phone",
			IssueDescription: "Cracked screen",
			Status:           strPtr("Fixed"),
		})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("rejects invalid priority", func(t *testing.T) {
		_, err := svc.Ticket.CreateTicket(ctx, &CreateTicketInput{
			CustomerID:       customer.ID,
			DeviceType:       "Phone",
			IssueDescription: "Cracked screen",
			Priority:         strPtr("Urgent"),
		})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("created Completed stamps CompletedAt", func(t *testing.T) {
		ticket, err := svc.Ticket.CreateTicket(ctx, &CreateTicketInput{
			CustomerID:       customer.ID,
			DeviceType:       "Tablet",
			IssueDescription: "Battery swap",
			Status:           strPtr("Completed"),
		})
		require.NoError(t, err)
		assert.NotNil(t, ticket.CompletedAt)
	})
}

func TestTicketService_UpdateTicket(t *testing.T) {
	svc := newServices(setupTestDB(t))
	ctx := context.Background()
	customer := createTestCustomer(t, svc, "Evan")

	t.Run("status change appends one history entry", func(t *testing.T) {
		ticket := createTestTicket(t, svc, customer.ID)

		updated, err := svc.Ticket.UpdateTicket(ctx, &UpdateTicketInput{
			ID:     ticket.ID,
			Status: strPtr("In Progress"),
		})
		require.NoError(t, err)
		assert.Equal(t, enum.TicketStatusInProgress, updated.Status)

		history, err := svc.Ticket.History(ctx, ticket.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, enum.TicketStatusOpen, history[0].StatusFrom)
		assert.Equal(t, enum.TicketStatusInProgress, history[0].StatusTo)
	})

	t.Run("same status writes no history", func(t *testing.T) {
		ticket := createTestTicket(t, svc, customer.ID)

		_, err := svc.Ticket.UpdateTicket(ctx, &UpdateTicketInput{
			ID:     ticket.ID,
			Status: strPtr("Open"),
		})
		require.NoError(t, err)

		history, err := svc.Ticket.History(ctx, ticket.ID)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("non-status update writes no history", func(t *testing.T) {
		ticket := createTestTicket(t, svc, customer.ID)

		_, err := svc.Ticket.UpdateTicket(ctx, &UpdateTicketInput{
			ID:         ticket.ID,
			Technician: strPtr("Sam"),
			ActualCost: floatPtr(45.50),
		})
		require.NoError(t, err)

		history, err := svc.Ticket.History(ctx, ticket.ID)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("history is ordered most recent first", func(t *testing.T) {
		ticket := createTestTicket(t, svc, customer.ID)

		for _, status := range []string{"In Progress", "Waiting for Parts", "Completed"} {
			_, err := svc.Ticket.UpdateTicket(ctx, &UpdateTicketInput{
				ID:     ticket.ID,
				Status: strPtr(status),
			})
			require.NoError(t, err)
		}

		history, err := svc.Ticket.History(ctx, ticket.ID)
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, enum.TicketStatusCompleted, history[0].StatusTo)
		assert.Equal(t, enum.TicketStatusWaitingForParts, history[1].StatusTo)
		assert.Equal(t, enum.TicketStatusInProgress, history[2].StatusTo)
	})

	t.Run("first completion stamps CompletedAt, reopening keeps it", func(t *testing.T) {
		ticket := createTestTicket(t, svc, customer.ID)

		completed, err := svc.Ticket.UpdateTicket(ctx, &UpdateTicketInput{
			ID:     ticket.ID,
			Status: strPtr("Completed"),
		})
		require.NoError(t, err)
		require.NotNil(t, completed.CompletedAt)
		firstStamp := *completed.CompletedAt

		reopened, err := svc.Ticket.UpdateTicket(ctx, &UpdateTicketInput{
			ID:     ticket.ID,
			Status: strPtr("Open"),
		})
		require.NoError(t, err)
		require.NotNil(t, reopened.CompletedAt)

		recompleted, err := svc.Ticket.UpdateTicket(ctx, &UpdateTicketInput{
			ID:     ticket.ID,
			Status: strPtr("Completed"),
		})
		require.NoError(t, err)
		require.NotNil(t, recompleted.CompletedAt)
		assert.True(t, recompleted.CompletedAt.Equal(firstStamp))
	})

	t.Run("rejects invalid status without touching the ticket", func(t *testing.T) {
		ticket := createTestTicket(t, svc, customer.ID)

		_, err := svc.Ticket.UpdateTicket(ctx, &UpdateTicketInput{
			ID:     ticket.ID,
			Status: strPtr("Bogus"),
		})
		require.Error(t, err)

		got, err := svc.Ticket.GetTicket(ctx, ticket.ID)
		require.NoError(t, err)
		assert.Equal(t, enum.TicketStatusOpen, got.Status)
	})

	t.Run("update unknown ticket returns not found", func(t *testing.T) {
		_, err := svc.Ticket.UpdateTicket(ctx, &UpdateTicketInput{ID: 9999})
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestTicketService_ListTickets(t *testing.T) {
	svc := newServices(setupTestDB(t))
	ctx := context.Background()
	alice := createTestCustomer(t, svc, "Alice")
	bob := createTestCustomer(t, svc, "Bob")

	createTestTicket(t, svc, alice.ID)
	createTestTicket(t, svc, bob.ID)
	completed := createTestTicket(t, svc, bob.ID)
	_, err := svc.Ticket.UpdateTicket(ctx, &UpdateTicketInput{
		ID:     completed.ID,
		Status: strPtr("Completed"),
	})
	require.NoError(t, err)

	pageParams := func() *pagination.PaginationParams {
		return &pagination.PaginationParams{Page: 1, PerPage: 10}
	}

	t.Run("lists all tickets", func(t *testing.T) {
		result, err := svc.Ticket.ListTickets(ctx, &repository.TicketFilterParams{Pagination: pageParams()})
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.Pagination.Total)
	})

	t.Run("filters by status", func(t *testing.T) {
		status := enum.TicketStatusCompleted
		result, err := svc.Ticket.ListTickets(ctx, &repository.TicketFilterParams{
			Pagination: pageParams(),
			Status:     &status,
		})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, completed.ID, result.Items[0].ID)
	})

	t.Run("filters by customer", func(t *testing.T) {
		result, err := svc.Ticket.ListTickets(ctx, &repository.TicketFilterParams{
			Pagination: pageParams(),
			CustomerID: &bob.ID,
		})
		require.NoError(t, err)
		assert.Len(t, result.Items, 2)
	})
}

func TestTicketService_History_NotFound(t *testing.T) {
	svc := newServices(setupTestDB(t))

	_, err := svc.Ticket.History(context.Background(), 9999)
	assert.True(t, apperror.IsNotFound(err))
}
