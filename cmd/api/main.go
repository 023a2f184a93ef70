package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/techgrove/repairdesk/internal/application/service"
	"github.com/techgrove/repairdesk/internal/config"
	"github.com/techgrove/repairdesk/internal/infrastructure/database"
	"github.com/techgrove/repairdesk/internal/infrastructure/repository"
	"github.com/techgrove/repairdesk/internal/presentation/http/handler"
	"github.com/techgrove/repairdesk/internal/presentation/http/routes"
	"github.com/techgrove/repairdesk/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Open(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	reportRepo := repository.NewReportRepository(db)
	backupRepo := repository.NewBackupRepository(db)

	// Initialize services
	customerService := service.NewCustomerService(customerRepo, reportRepo)
	ticketService := service.NewTicketService(ticketRepo, customerRepo)
	inventoryService := service.NewInventoryService(inventoryRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, customerRepo, ticketRepo, settingsRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	reportService := service.NewReportService(reportRepo, customerRepo, inventoryRepo)
	backupService := service.NewBackupService(backupRepo)

	// Seed default settings, keeping any existing values
	if err := settingsService.Seed(context.Background()); err != nil {
		log.Printf("Warning: Failed to seed default settings: %v", err)
	}

	// Initialize handlers
	h := &routes.Handlers{
		Customer:  handler.NewCustomerHandler(customerService),
		Ticket:    handler.NewTicketHandler(ticketService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Invoice:   handler.NewInvoiceHandler(invoiceService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Report:    handler.NewReportHandler(reportService),
		Backup:    handler.NewBackupHandler(backupService),
	}

	// Setup routes and start the server
	router := routes.Setup(h, cfg)

	slog.Info("starting server", "name", cfg.App.Name, "env", cfg.App.Env, "port", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
