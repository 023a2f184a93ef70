package repository

import (
	"context"
	"time"

	"github.com/techgrove/repairdesk/internal/domain/entity"
)

// BackupData is the full-state snapshot document: arrays of every entity
// kind plus the capture timestamp
type BackupData struct {
	Customers []entity.Customer      `json:"customers"`
	Tickets   []entity.Ticket        `json:"tickets"`
	History   []entity.TicketHistory `json:"ticket_history"`
	Inventory []entity.InventoryItem `json:"inventory"`
	Invoices  []entity.Invoice       `json:"invoices"`
	Items     []entity.InvoiceItem   `json:"invoice_items"`
	Settings  []entity.Setting       `json:"settings"`
	Timestamp time.Time              `json:"timestamp"`
}

// BackupRepository defines full-state export and restore
type BackupRepository interface {
	ExportAll(ctx context.Context) (*BackupData, error)
	// RestoreAll clears every table in FK order and reinserts the snapshot
	// in a single transaction. Ids are regenerated; foreign keys are
	// remapped through the old-to-new id maps so relationships survive.
	RestoreAll(ctx context.Context, data *BackupData) error
}
