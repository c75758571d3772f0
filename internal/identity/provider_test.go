package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeGoogleAuthenticate(t *testing.T) {
	provider := NewFakeGoogle(0)
	provider.now = func() time.Time {
		return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	}

	id, err := provider.Authenticate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "google-1710493200000", id.ExternalID)
	assert.Equal(t, "user@gmail.com", id.Email)
	assert.Equal(t, "Google User", id.Name)
	assert.NotEmpty(t, id.Avatar)
}

func TestFakeGoogleAuthenticateCancelled(t *testing.T) {
	provider := NewFakeGoogle(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.Authenticate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
