package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTicketStatus(t *testing.T) {
	t.Run("accepts every defined status", func(t *testing.T) {
		for _, status := range TicketStatuses {
			parsed, err := ParseTicketStatus(string(status))
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown and differently cased values", func(t *testing.T) {
		for _, raw := range []string{"", "open", "OPEN", "Fixed", "In progress", "Done"} {
			_, err := ParseTicketStatus(raw)
			assert.Errorf(t, err, "value %q", raw)
		}
	})
}

func TestParsePriority(t *testing.T) {
	t.Run("accepts every defined priority", func(t *testing.T) {
		for _, priority := range Priorities {
			parsed, err := ParsePriority(string(priority))
			require.NoError(t, err)
			assert.Equal(t, priority, parsed)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		for _, raw := range []string{"", "low", "Urgent", "Critical"} {
			_, err := ParsePriority(raw)
			assert.Errorf(t, err, "value %q", raw)
		}
	})
}

func TestParseInvoiceStatus(t *testing.T) {
	t.Run("accepts every defined status", func(t *testing.T) {
		for _, status := range InvoiceStatuses {
			parsed, err := ParseInvoiceStatus(string(status))
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		for _, raw := range []string{"", "paid", "Settled", "Void"} {
			_, err := ParseInvoiceStatus(raw)
			assert.Errorf(t, err, "value %q", raw)
		}
	})
}
