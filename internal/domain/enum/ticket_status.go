package enum

import "fmt"

// TicketStatus represents the lifecycle state of a repair ticket
type TicketStatus string

const (
	TicketStatusOpen            TicketStatus = "Open"
	TicketStatusInProgress      TicketStatus = "In Progress"
	TicketStatusWaitingForParts TicketStatus = "Waiting for Parts"
	TicketStatusCompleted       TicketStatus = "Completed"
)

// TicketStatuses lists every valid ticket status
var TicketStatuses = []TicketStatus{
	TicketStatusOpen,
	TicketStatusInProgress,
	TicketStatusWaitingForParts,
	TicketStatusCompleted,
}

func (s TicketStatus) String() string {
	return string(s)
}

// IsValid reports whether s is a recognized ticket status
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusWaitingForParts, TicketStatusCompleted:
		return true
	}
	return false
}

// ParseTicketStatus validates a raw status value at the boundary
func ParseTicketStatus(value string) (TicketStatus, error) {
	s := TicketStatus(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %q", value)
	}
	return s, nil
}
