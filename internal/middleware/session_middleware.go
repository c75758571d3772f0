package middleware

import (
	"github.com/gin-gonic/gin"

	"evento/internal/identity"
	"evento/internal/session"
)

func SessionMiddleware(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("sessions", sessions)
		c.Next()
	}
}

func GetSessionStore(c *gin.Context) *session.Store {
	sessions, exists := c.Get("sessions")
	if !exists {
		return nil
	}
	return sessions.(*session.Store)
}

func IdentityMiddleware(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("identity_provider", provider)
		c.Next()
	}
}

func GetIdentityProvider(c *gin.Context) identity.Provider {
	provider, exists := c.Get("identity_provider")
	if !exists {
		return nil
	}
	return provider.(identity.Provider)
}
