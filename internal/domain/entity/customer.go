package entity

import (
	"encoding/json"
	"time"
)

// Customer represents a repair-shop customer
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     *string   `gorm:"size:255" json:"email,omitempty"`
	Phone     *string   `gorm:"size:50" json:"phone,omitempty"`
	Address   *string   `gorm:"type:text" json:"address,omitempty"`
	Notes     *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Tickets  []Ticket  `gorm:"foreignKey:CustomerID" json:"-"`
	Invoices []Invoice `gorm:"foreignKey:CustomerID" json:"-"`
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// CustomerWithAggregates is the denormalized customer view returned by
// listings: the stored row plus derived counters, never persisted
type CustomerWithAggregates struct {
	Customer
	TicketCount int64 `json:"ticket_count"`
	TotalSpent  int64 `json:"-"` // cents
}

// MarshalJSON converts the cent-denominated total to decimal for API responses
func (c CustomerWithAggregates) MarshalJSON() ([]byte, error) {
	type Alias CustomerWithAggregates
	return json.Marshal(&struct {
		Alias
		TotalSpent float64 `json:"total_spent"`
	}{
		Alias:      Alias(c),
		TotalSpent: float64(c.TotalSpent) / 100,
	})
}
