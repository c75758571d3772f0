package helpers

import (
	"strings"

	"github.com/google/uuid"
)

const ticketIDPrefix = "TKT-"

// NewTicketID generates a fresh human-readable ticket code. The code is
// printed on confirmations and typed at venue entrances, so it is short and
// uppercase rather than a raw uuid.
func NewTicketID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return ticketIDPrefix + strings.ToUpper(raw[:12])
}
