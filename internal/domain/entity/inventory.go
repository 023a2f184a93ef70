package entity

import (
	"encoding/json"
	"time"
)

// InventoryItem represents a stocked part or accessory
type InventoryItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Category    *string   `gorm:"size:100" json:"category,omitempty"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	SKU         *string   `gorm:"size:100;unique" json:"sku,omitempty"`
	Quantity    int       `gorm:"default:0" json:"quantity"`
	MinQuantity int       `gorm:"default:5" json:"min_quantity"`
	CostPrice   int64     `gorm:"default:0" json:"-"` // Stored in cents
	SellPrice   int64     `gorm:"default:0" json:"-"` // Stored in cents
	Supplier    *string   `gorm:"size:255" json:"supplier,omitempty"`
	Location    *string   `gorm:"size:255" json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsLowStock reports whether the item has fallen to or below its reorder
// threshold. Derived, never stored.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.MinQuantity
}

// MarshalJSON converts cent-denominated prices to decimal for API responses
func (i InventoryItem) MarshalJSON() ([]byte, error) {
	type Alias InventoryItem
	return json.Marshal(&struct {
		Alias
		CostPrice float64 `json:"cost_price"`
		SellPrice float64 `json:"sell_price"`
		LowStock  bool    `json:"low_stock"`
	}{
		Alias:     Alias(i),
		CostPrice: float64(i.CostPrice) / 100,
		SellPrice: float64(i.SellPrice) / 100,
		LowStock:  i.IsLowStock(),
	})
}

// TableName returns the table name for the InventoryItem model
func (InventoryItem) TableName() string {
	return "inventory"
}
