package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/techgrove/repairdesk/internal/domain/entity"
	"github.com/techgrove/repairdesk/internal/domain/repository"
	"github.com/techgrove/repairdesk/pkg/apperror"
	"github.com/techgrove/repairdesk/pkg/pagination"
)

// InventoryService handles inventory CRUD and stock adjustments
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo repository.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// CreateItemInput represents the create inventory item input
type CreateItemInput struct {
	Name        string
	Category    *string
	Description *string
	SKU         *string
	Quantity    int
	MinQuantity *int
	CostPrice   *float64
	SellPrice   *float64
	Supplier    *string
	Location    *string
}

// CreateItem creates a new inventory item
func (s *InventoryService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.InventoryItem, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewBadRequestError("Item name is required")
	}
	if input.Quantity < 0 {
		return nil, apperror.NewInvalidOperationError("Quantity cannot be negative")
	}

	if input.SKU != nil && *input.SKU != "" {
		existing, err := s.inventoryRepo.GetBySKU(ctx, *input.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConstraintError("SKU already exists")
		}
	}

	item := &entity.InventoryItem{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		SKU:         input.SKU,
		Quantity:    input.Quantity,
		MinQuantity: 5,
		Supplier:    input.Supplier,
		Location:    input.Location,
	}
	if input.MinQuantity != nil {
		item.MinQuantity = *input.MinQuantity
	}
	if input.CostPrice != nil {
		item.CostPrice = int64(*input.CostPrice * 100)
	}
	if input.SellPrice != nil {
		item.SellPrice = int64(*input.SellPrice * 100)
	}

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetItem retrieves an inventory item by ID
func (s *InventoryService) GetItem(ctx context.Context, id uint) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}
	return item, nil
}

// ListItems lists inventory items with filters
func (s *InventoryService) ListItems(ctx context.Context, params *repository.InventoryFilterParams) (*pagination.PaginatedResult[entity.InventoryItem], error) {
	items, total, err := s.inventoryRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// UpdateItemInput represents the update inventory item input
type UpdateItemInput struct {
	ID          uint
	Name        *string
	Category    *string
	Description *string
	SKU         *string
	MinQuantity *int
	CostPrice   *float64
	SellPrice   *float64
	Supplier    *string
	Location    *string
}

// UpdateItem updates an inventory item. Quantity is deliberately excluded;
// stock changes go through AdjustStock.
func (s *InventoryService) UpdateItem(ctx context.Context, input *UpdateItemInput) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}

	if input.SKU != nil && *input.SKU != "" {
		existing, err := s.inventoryRepo.GetBySKU(ctx, *input.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != item.ID {
			return nil, apperror.NewConstraintError("SKU already exists")
		}
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperror.NewBadRequestError("Item name is required")
		}
		item.Name = *input.Name
	}
	if input.Category != nil {
		item.Category = input.Category
	}
	if input.Description != nil {
		item.Description = input.Description
	}
	if input.SKU != nil {
		item.SKU = input.SKU
	}
	if input.MinQuantity != nil {
		item.MinQuantity = *input.MinQuantity
	}
	if input.CostPrice != nil {
		item.CostPrice = int64(*input.CostPrice * 100)
	}
	if input.SellPrice != nil {
		item.SellPrice = int64(*input.SellPrice * 100)
	}
	if input.Supplier != nil {
		item.Supplier = input.Supplier
	}
	if input.Location != nil {
		item.Location = input.Location
	}

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteItem removes an inventory item
func (s *InventoryService) DeleteItem(ctx context.Context, id uint) error {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Inventory item")
	}
	return s.inventoryRepo.Delete(ctx, id)
}

// AdjustStock applies a signed quantity delta. An adjustment that would
// drive stock below zero is rejected and leaves the item untouched.
func (s *InventoryService) AdjustStock(ctx context.Context, id uint, delta int, reason string) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}

	ok, err := s.inventoryRepo.AdjustQuantity(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewInvalidOperationError("Insufficient stock")
	}

	if reason == "" {
		reason = "Manual adjustment"
	}
	slog.Info("stock adjusted", "item_id", id, "delta", delta, "reason", reason)

	return s.GetItem(ctx, id)
}

// LowStockItems returns items at or below their reorder threshold, lowest
// quantity first
func (s *InventoryService) LowStockItems(ctx context.Context) ([]entity.InventoryItem, error) {
	return s.inventoryRepo.ListLowStock(ctx)
}
