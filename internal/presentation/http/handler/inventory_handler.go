package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/techgrove/repairdesk/internal/application/service"
	"github.com/techgrove/repairdesk/internal/domain/repository"
	"github.com/techgrove/repairdesk/internal/presentation/http/dto/response"
	"github.com/techgrove/repairdesk/pkg/pagination"
)

// InventoryHandler handles inventory-related HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// List handles listing inventory items with optional search and filters
func (h *InventoryHandler) List(c *gin.Context) {
	page, perPage := parsePageParams(c)

	params := &repository.InventoryFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:   c.Query("search"),
		LowStock: c.Query("low_stock") == "true",
	}
	if category := c.Query("category"); category != "" {
		params.Category = &category
	}

	result, err := h.inventoryService.ListItems(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Inventory items retrieved successfully", result)
}

// Create handles creating an inventory item
func (h *InventoryHandler) Create(c *gin.Context) {
	var req struct {
		Name        string   `json:"name" binding:"required"`
		Category    *string  `json:"category"`
		Description *string  `json:"description"`
		SKU         *string  `json:"sku"`
		Quantity    int      `json:"quantity"`
		MinQuantity *int     `json:"min_quantity"`
		CostPrice   *float64 `json:"cost_price"`
		SellPrice   *float64 `json:"sell_price"`
		Supplier    *string  `json:"supplier"`
		Location    *string  `json:"location"`
	}
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		SKU:         req.SKU,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		CostPrice:   req.CostPrice,
		SellPrice:   req.SellPrice,
		Supplier:    req.Supplier,
		Location:    req.Location,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Inventory item created successfully", item)
}

// Get handles getting a single inventory item
func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.inventoryService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item retrieved successfully", item)
}

// Update handles updating an inventory item's descriptive fields. Stock
// level changes go through Adjust.
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Category    *string  `json:"category"`
		Description *string  `json:"description"`
		SKU         *string  `json:"sku"`
		MinQuantity *int     `json:"min_quantity"`
		CostPrice   *float64 `json:"cost_price"`
		SellPrice   *float64 `json:"sell_price"`
		Supplier    *string  `json:"supplier"`
		Location    *string  `json:"location"`
	}
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), &service.UpdateItemInput{
		ID:          id,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		SKU:         req.SKU,
		MinQuantity: req.MinQuantity,
		CostPrice:   req.CostPrice,
		SellPrice:   req.SellPrice,
		Supplier:    req.Supplier,
		Location:    req.Location,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item updated successfully", item)
}

// Adjust handles applying a signed stock delta. An adjustment that would
// drive the quantity negative is rejected and the stock is left unchanged.
func (h *InventoryHandler) Adjust(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req struct {
		Delta  int    `json:"delta" binding:"required"`
		Reason string `json:"reason"`
	}
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.inventoryService.AdjustStock(c.Request.Context(), id, req.Delta, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock adjusted successfully", item)
}

// LowStock handles listing items at or below their minimum quantity
func (h *InventoryHandler) LowStock(c *gin.Context) {
	items, err := h.inventoryService.LowStockItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock items retrieved successfully", items)
}

// Delete handles deleting an inventory item
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.inventoryService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
