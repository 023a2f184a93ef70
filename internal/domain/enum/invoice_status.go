package enum

import "fmt"

// InvoiceStatus represents the payment state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "Pending"
	InvoiceStatusPaid    InvoiceStatus = "Paid"
	InvoiceStatusOverdue InvoiceStatus = "Overdue"
)

// InvoiceStatuses lists every valid invoice status
var InvoiceStatuses = []InvoiceStatus{InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue}

func (s InvoiceStatus) String() string {
	return string(s)
}

// IsValid reports whether s is a recognized invoice status
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// ParseInvoiceStatus validates a raw status value at the boundary
func ParseInvoiceStatus(value string) (InvoiceStatus, error) {
	s := InvoiceStatus(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid invoice status: %q", value)
	}
	return s, nil
}
