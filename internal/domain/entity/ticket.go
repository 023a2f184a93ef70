package entity

import (
	"encoding/json"
	"time"

	"github.com/techgrove/repairdesk/internal/domain/enum"
)

// Ticket represents a repair job tracked from intake to completion
type Ticket struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	CustomerID       uint              `gorm:"not null;index" json:"customer_id"`
	DeviceType       string            `gorm:"size:100;not null" json:"device_type"`
	DeviceModel      *string           `gorm:"size:255" json:"device_model,omitempty"`
	IssueDescription string            `gorm:"type:text;not null" json:"issue_description"`
	Status           enum.TicketStatus `gorm:"size:50;default:Open;index" json:"status"`
	Priority         enum.Priority     `gorm:"size:20;default:Medium" json:"priority"`
	EstimatedCost    int64             `gorm:"default:0" json:"-"` // Stored in cents
	ActualCost       int64             `gorm:"default:0" json:"-"` // Stored in cents
	Technician       *string           `gorm:"size:255" json:"technician,omitempty"`
	Notes            *string           `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	CompletedAt      *time.Time        `json:"completed_at,omitempty"`

	// Relationships
	Customer *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	History  []TicketHistory `gorm:"foreignKey:TicketID" json:"-"`
}

// MarshalJSON converts cent-denominated costs to decimal for API responses
func (t Ticket) MarshalJSON() ([]byte, error) {
	type Alias Ticket
	return json.Marshal(&struct {
		Alias
		EstimatedCost float64 `json:"estimated_cost"`
		ActualCost    float64 `json:"actual_cost"`
	}{
		Alias:         Alias(t),
		EstimatedCost: float64(t.EstimatedCost) / 100,
		ActualCost:    float64(t.ActualCost) / 100,
	})
}

// TableName returns the table name for the Ticket model
func (Ticket) TableName() string {
	return "tickets"
}

// TicketHistory is an append-only log entry recording one observed status
// change. Rows are never updated once written.
type TicketHistory struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	TicketID   uint              `gorm:"not null;index" json:"ticket_id"`
	StatusFrom enum.TicketStatus `gorm:"size:50" json:"status_from"`
	StatusTo   enum.TicketStatus `gorm:"size:50" json:"status_to"`
	Notes      *string           `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`

	Ticket Ticket `gorm:"foreignKey:TicketID" json:"-"`
}

// TableName returns the table name for the TicketHistory model
func (TicketHistory) TableName() string {
	return "ticket_history"
}
