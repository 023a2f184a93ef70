package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/techgrove/repairdesk/internal/domain/entity"
	"github.com/techgrove/repairdesk/internal/infrastructure/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entity.Customer{},
		&entity.Ticket{},
		&entity.TicketHistory{},
		&entity.InventoryItem{},
		&entity.Invoice{},
		&entity.InvoiceItem{},
		&entity.Setting{},
	)
	require.NoError(t, err)

	return db
}

// newServices wires every service against real repositories on the given db
type services struct {
	Customer  *CustomerService
	Ticket    *TicketService
	Inventory *InventoryService
	Invoice   *InvoiceService
	Settings  *SettingsService
	Report    *ReportService
	Backup    *BackupService
}

func newServices(db *gorm.DB) *services {
	customerRepo := repository.NewCustomerRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	reportRepo := repository.NewReportRepository(db)
	backupRepo := repository.NewBackupRepository(db)

	return &services{
		Customer:  NewCustomerService(customerRepo, reportRepo),
		Ticket:    NewTicketService(ticketRepo, customerRepo),
		Inventory: NewInventoryService(inventoryRepo),
		Invoice:   NewInvoiceService(invoiceRepo, customerRepo, ticketRepo, settingsRepo),
		Settings:  NewSettingsService(settingsRepo),
		Report:    NewReportService(reportRepo, customerRepo, inventoryRepo),
		Backup:    NewBackupService(backupRepo),
	}
}

func createTestCustomer(t *testing.T, svc *services, name string) *entity.Customer {
	customer, err := svc.Customer.CreateCustomer(context.Background(), &CreateCustomerInput{Name: name})
	require.NoError(t, err)
	return customer
}

func createTestTicket(t *testing.T, svc *services, customerID uint) *entity.Ticket {
	ticket, err := svc.Ticket.CreateTicket(context.Background(), &CreateTicketInput{
		CustomerID:       customerID,
		DeviceType:       "Laptop",
		IssueDescription: "Does not boot",
	})
	require.NoError(t, err)
	return ticket
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }
