package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/techgrove/repairdesk/internal/config"
	"github.com/techgrove/repairdesk/internal/presentation/http/handler"
	"github.com/techgrove/repairdesk/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Customer  *handler.CustomerHandler
	Ticket    *handler.TicketHandler
	Inventory *handler.InventoryHandler
	Invoice   *handler.InvoiceHandler
	Settings  *handler.SettingsHandler
	Report    *handler.ReportHandler
	Backup    *handler.BackupHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rlCfg := middleware.DefaultRateLimiterConfig()
		if cfg.RateLimit.Requests > 0 && cfg.RateLimit.Duration > 0 {
			rlCfg.RequestsPerSecond = float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration)
			rlCfg.BurstSize = cfg.RateLimit.Requests
		}
		rateLimiter := middleware.NewClientRateLimiter(rlCfg)
		v1.Use(rateLimiter.Middleware())

		registerCustomerRoutes(v1, h)
		registerTicketRoutes(v1, h)
		registerInventoryRoutes(v1, h)
		registerInvoiceRoutes(v1, h)
		registerSettingsRoutes(v1, h)
		registerReportRoutes(v1, h)
		registerBackupRoutes(v1, h)
	}

	return router
}

func registerCustomerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	customers := v1.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
		customers.GET("/:id/aggregates", h.Report.CustomerAggregates)
		customers.GET("/:id/tickets", h.Ticket.ListByCustomer)
	}
}

func registerTicketRoutes(v1 *gin.RouterGroup, h *Handlers) {
	tickets := v1.Group("/tickets")
	{
		tickets.GET("", h.Ticket.List)
		tickets.POST("", h.Ticket.Create)
		tickets.GET("/:id", h.Ticket.Get)
		tickets.PUT("/:id", h.Ticket.Update)
		tickets.DELETE("/:id", h.Ticket.Delete)
		tickets.GET("/:id/history", h.Ticket.History)
	}
}

func registerInventoryRoutes(v1 *gin.RouterGroup, h *Handlers) {
	inventory := v1.Group("/inventory")
	{
		inventory.GET("", h.Inventory.List)
		inventory.POST("", h.Inventory.Create)
		inventory.GET("/low-stock", h.Inventory.LowStock)
		inventory.GET("/:id", h.Inventory.Get)
		inventory.PUT("/:id", h.Inventory.Update)
		inventory.DELETE("/:id", h.Inventory.Delete)
		inventory.POST("/:id/adjust", h.Inventory.Adjust)
	}
}

func registerInvoiceRoutes(v1 *gin.RouterGroup, h *Handlers) {
	invoices := v1.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Create)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.GET("/:id/items", h.Invoice.ListItems)
		invoices.POST("/:id/items", h.Invoice.AddItem)
	}
}

func registerSettingsRoutes(v1 *gin.RouterGroup, h *Handlers) {
	settings := v1.Group("/settings")
	{
		settings.GET("", h.Settings.GetAll)
		settings.GET("/:key", h.Settings.Get)
		settings.PUT("/:key", h.Settings.Set)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("/dashboard", h.Report.Dashboard)
		reports.GET("/revenue/monthly", h.Report.MonthlyRevenue)
		reports.GET("/customers", h.Report.CustomerSummaries)
		reports.GET("/customers/top", h.Report.TopCustomers)
		reports.GET("/low-stock", h.Report.LowStock)
	}
}

func registerBackupRoutes(v1 *gin.RouterGroup, h *Handlers) {
	backup := v1.Group("/backup")
	{
		backup.GET("/export", h.Backup.Export)
		backup.POST("/restore", h.Backup.Restore)
	}
}
