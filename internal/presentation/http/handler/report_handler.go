package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/techgrove/repairdesk/internal/application/service"
	"github.com/techgrove/repairdesk/internal/presentation/http/dto/response"
)

// ReportHandler handles dashboard and reporting HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Dashboard handles getting the headline dashboard statistics
func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.reportService.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// CustomerAggregates handles getting one customer's ticket count and
// total spend, computed fresh from the underlying records
func (h *ReportHandler) CustomerAggregates(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	aggregates, err := h.reportService.CustomerAggregates(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer aggregates retrieved successfully", gin.H{
		"customer_id":  id,
		"ticket_count": aggregates.TicketCount,
		"total_spent":  float64(aggregates.TotalSpent) / 100,
	})
}

// MonthlyRevenue handles getting paid revenue grouped by month for a year
func (h *ReportHandler) MonthlyRevenue(c *gin.Context) {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 2000 || parsed > 2100 {
			response.BadRequest(c, "Invalid year")
			return
		}
		year = parsed
	}

	revenue, err := h.reportService.MonthlyRevenue(c.Request.Context(), year)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly revenue retrieved successfully", gin.H{
		"year":    year,
		"revenue": revenue,
	})
}

// CustomerSummaries handles listing every customer with derived aggregates
func (h *ReportHandler) CustomerSummaries(c *gin.Context) {
	customers, err := h.reportService.CustomerSummaries(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer summaries retrieved successfully", customers)
}

// LowStock handles getting inventory at or below its reorder threshold
func (h *ReportHandler) LowStock(c *gin.Context) {
	items, err := h.reportService.LowStockItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock items retrieved successfully", items)
}

// TopCustomers handles getting the highest-revenue customers
func (h *ReportHandler) TopCustomers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	customers, err := h.reportService.TopCustomersByRevenue(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top customers retrieved successfully", customers)
}
