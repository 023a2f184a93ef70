package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techgrove/repairdesk/internal/domain/entity"
	"github.com/techgrove/repairdesk/internal/domain/enum"
	"github.com/techgrove/repairdesk/internal/domain/repository"
	"github.com/techgrove/repairdesk/pkg/apperror"
)

func TestBackupService_ExportRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("restore rejects nil snapshot", func(t *testing.T) {
		svc := newServices(setupTestDB(t))
		err := svc.Backup.Restore(ctx, nil)
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("round trip preserves records and relationships", func(t *testing.T) {
		source := newServices(setupTestDB(t))
		require.NoError(t, source.Settings.Seed(ctx))

		customer := createTestCustomer(t, source, "Snapshot Customer")
		ticket := createTestTicket(t, source, customer.ID)
		_, err := source.Ticket.UpdateTicket(ctx, &UpdateTicketInput{
			ID:     ticket.ID,
			Status: strPtr("Completed"),
		})
		require.NoError(t, err)

		createTestItem(t, source, "Snapshot Part", 4)

		invoice, err := source.Invoice.CreateInvoice(ctx, &CreateInvoiceInput{
			CustomerID: customer.ID,
			TicketID:   &ticket.ID,
			Amount:     80,
		})
		require.NoError(t, err)
		_, err = source.Invoice.AddLineItem(ctx, &AddLineItemInput{
			InvoiceID:   invoice.ID,
			Description: "Diagnostics",
			Quantity:    1,
			UnitPrice:   80,
		})
		require.NoError(t, err)

		data, err := source.Backup.Export(ctx)
		require.NoError(t, err)
		require.Len(t, data.Customers, 1)
		require.Len(t, data.Tickets, 1)
		require.Len(t, data.History, 1)
		require.Len(t, data.Inventory, 1)
		require.Len(t, data.Invoices, 1)
		require.Len(t, data.Items, 1)
		assert.False(t, data.Timestamp.IsZero())

		// Restore into a fresh store with unrelated data already present
		target := newServices(setupTestDB(t))
		createTestCustomer(t, target, "Stale Customer")
		require.NoError(t, target.Backup.Restore(ctx, data))

		// Pre-restore data is gone; only the snapshot remains
		restored, err := target.Backup.Export(ctx)
		require.NoError(t, err)
		require.Len(t, restored.Customers, 1)
		assert.Equal(t, "Snapshot Customer", restored.Customers[0].Name)

		// Relationships survive id regeneration
		require.Len(t, restored.Tickets, 1)
		assert.Equal(t, restored.Customers[0].ID, restored.Tickets[0].CustomerID)
		assert.NotNil(t, restored.Tickets[0].CompletedAt)

		require.Len(t, restored.History, 1)
		assert.Equal(t, restored.Tickets[0].ID, restored.History[0].TicketID)

		require.Len(t, restored.Invoices, 1)
		assert.Equal(t, restored.Customers[0].ID, restored.Invoices[0].CustomerID)
		require.NotNil(t, restored.Invoices[0].TicketID)
		assert.Equal(t, restored.Tickets[0].ID, *restored.Invoices[0].TicketID)

		require.Len(t, restored.Items, 1)
		assert.Equal(t, restored.Invoices[0].ID, restored.Items[0].InvoiceID)

		settings, err := target.Settings.All(ctx)
		require.NoError(t, err)
		assert.Equal(t, "INV-", settings["invoice_prefix"])
	})

	t.Run("snapshot with dangling references is rejected", func(t *testing.T) {
		svc := newServices(setupTestDB(t))
		survivor := createTestCustomer(t, svc, "Survivor")

		data := &repository.BackupData{
			Tickets: []entity.Ticket{{
				ID:               7,
				CustomerID:       42, // not present in the snapshot
				DeviceType:       "Phone",
				IssueDescription: "Cracked screen",
				Status:           enum.TicketStatusOpen,
				Priority:         enum.PriorityMedium,
			}},
		}

		err := svc.Backup.Restore(ctx, data)
		require.Error(t, err)
		assert.True(t, apperror.IsConstraint(err))

		// Rejection rolls back the wipe; existing data is untouched
		got, err := svc.Customer.GetCustomer(ctx, survivor.ID)
		require.NoError(t, err)
		assert.Equal(t, "Survivor", got.Name)
	})

	t.Run("restoring an empty snapshot clears the store", func(t *testing.T) {
		svc := newServices(setupTestDB(t))
		customer := createTestCustomer(t, svc, "Doomed")

		data, err := newServices(setupTestDB(t)).Backup.Export(ctx)
		require.NoError(t, err)

		require.NoError(t, svc.Backup.Restore(ctx, data))

		_, err = svc.Customer.GetCustomer(ctx, customer.ID)
		assert.True(t, apperror.IsNotFound(err))
	})
}
