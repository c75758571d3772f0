package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserCheckPassword(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	user := User{Email: "john@example.com", Password: string(hashed)}

	assert.True(t, user.CheckPassword("password"))
	assert.False(t, user.CheckPassword("Password"))
	assert.False(t, user.CheckPassword(""))
}

func TestUserCheckPasswordFederatedAccount(t *testing.T) {
	// Federated accounts carry a placeholder hash; no password may match.
	user := User{Email: "user@gmail.com", Password: "-", GoogleID: "google-123456"}

	assert.False(t, user.CheckPassword("password"))
	assert.False(t, user.CheckPassword("-"))
}
