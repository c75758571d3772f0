package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketID(t *testing.T) {
	id := NewTicketID()
	assert.True(t, strings.HasPrefix(id, "TKT-"))
	assert.Len(t, id, len("TKT-")+12)
	assert.Equal(t, strings.ToUpper(id), id)
}

func TestNewTicketIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewTicketID()
		require.False(t, seen[id], "duplicate ticket id %s", id)
		seen[id] = true
	}
}
