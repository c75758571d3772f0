// Package identity abstracts the external identity provider used for
// federated login. The only implementation today is a fake that fabricates
// accounts after a simulated round-trip, so a genuine OAuth provider can be
// substituted without touching the handlers.
package identity

import (
	"context"
	"fmt"
	"time"
)

// Identity is the profile an external provider vouches for.
type Identity struct {
	ExternalID string
	Email      string
	Name       string
	Avatar     string
}

type Provider interface {
	Authenticate(ctx context.Context) (Identity, error)
}

// FakeGoogle always authenticates successfully after Delay, mimicking the
// latency of a real OAuth exchange.
type FakeGoogle struct {
	Delay time.Duration

	now func() time.Time
}

func NewFakeGoogle(delay time.Duration) *FakeGoogle {
	return &FakeGoogle{Delay: delay, now: time.Now}
}

func (g *FakeGoogle) Authenticate(ctx context.Context) (Identity, error) {
	if g.Delay > 0 {
		select {
		case <-time.After(g.Delay):
		case <-ctx.Done():
			return Identity{}, ctx.Err()
		}
	}

	return Identity{
		ExternalID: fmt.Sprintf("google-%d", g.now().UnixMilli()),
		Email:      "user@gmail.com",
		Name:       "Google User",
		Avatar:     "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=1",
	}, nil
}
