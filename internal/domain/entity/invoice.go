package entity

import (
	"encoding/json"
	"time"

	"github.com/techgrove/repairdesk/internal/domain/enum"
)

// Invoice represents a bill issued to a customer, optionally tied to a ticket
type Invoice struct {
	ID            uint               `gorm:"primaryKey" json:"id"`
	TicketID      *uint              `gorm:"index" json:"ticket_id,omitempty"`
	CustomerID    uint               `gorm:"not null;index" json:"customer_id"`
	InvoiceNumber string             `gorm:"size:100;unique;not null" json:"invoice_number"`
	Amount        int64              `gorm:"not null" json:"-"`  // Stored in cents
	TaxAmount     int64              `gorm:"default:0" json:"-"` // Stored in cents
	TotalAmount   int64              `gorm:"not null" json:"-"`  // Stored in cents
	Status        enum.InvoiceStatus `gorm:"size:50;default:Pending;index" json:"status"`
	DueDate       *time.Time         `json:"due_date,omitempty"`
	PaidDate      *time.Time         `json:"paid_date,omitempty"`
	PaymentMethod *string            `gorm:"size:50" json:"payment_method,omitempty"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`

	// Relationships
	Customer *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Ticket   *Ticket       `gorm:"foreignKey:TicketID" json:"-"`
	Items    []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// MarshalJSON converts cent-denominated amounts to decimal for API responses
func (i Invoice) MarshalJSON() ([]byte, error) {
	type Alias Invoice
	return json.Marshal(&struct {
		Alias
		Amount      float64 `json:"amount"`
		TaxAmount   float64 `json:"tax_amount"`
		TotalAmount float64 `json:"total_amount"`
	}{
		Alias:       Alias(i),
		Amount:      float64(i.Amount) / 100,
		TaxAmount:   float64(i.TaxAmount) / 100,
		TotalAmount: float64(i.TotalAmount) / 100,
	})
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem represents a line item on an invoice. Line items are
// informational detail; the parent invoice's amount stays authoritative.
type InvoiceItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	InvoiceID   uint   `gorm:"not null;index" json:"invoice_id"`
	Description string `gorm:"type:text;not null" json:"description"`
	Quantity    int    `gorm:"default:1" json:"quantity"`
	UnitPrice   int64  `gorm:"not null" json:"-"` // Stored in cents
	TotalPrice  int64  `gorm:"not null" json:"-"` // Stored in cents

	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// MarshalJSON converts cent-denominated prices to decimal for API responses
func (it InvoiceItem) MarshalJSON() ([]byte, error) {
	type Alias InvoiceItem
	return json.Marshal(&struct {
		Alias
		UnitPrice  float64 `json:"unit_price"`
		TotalPrice float64 `json:"total_price"`
	}{
		Alias:      Alias(it),
		UnitPrice:  float64(it.UnitPrice) / 100,
		TotalPrice: float64(it.TotalPrice) / 100,
	})
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
