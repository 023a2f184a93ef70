package repository

import (
	"context"

	"github.com/techgrove/repairdesk/internal/domain/entity"
	"github.com/techgrove/repairdesk/pkg/pagination"
)

// InventoryFilterParams represents filter parameters for inventory listings
type InventoryFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   *string
	LowStock   bool
}

// InventoryRepository defines the interface for inventory data operations
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id uint) (*entity.InventoryItem, error)
	GetBySKU(ctx context.Context, sku string) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *InventoryFilterParams) ([]entity.InventoryItem, int64, error)
	// AdjustQuantity applies a signed delta atomically, guarded so the
	// stored quantity can never go negative. Returns false when the guard
	// rejected the adjustment.
	AdjustQuantity(ctx context.Context, id uint, delta int) (bool, error)
	ListLowStock(ctx context.Context) ([]entity.InventoryItem, error)
}
