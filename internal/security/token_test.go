package security_test

import (
	"testing"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/security"

	"github.com/stretchr/testify/assert"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := security.NewTokenManager("test-secret-key-for-jwt-signing-0123456789")

	t.Run("Access Token", func(t *testing.T) {
		token, err := m.GenerateAccessToken(42, "alice")
		assert.NoError(t, err)

		claims, err := m.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), claims.UserID)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)
	})

	t.Run("Refresh Token", func(t *testing.T) {
		token, err := m.GenerateRefreshToken(42, "alice")
		assert.NoError(t, err)

		claims, err := m.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, security.TokenTypeRefresh, claims.Type)
	})

	t.Run("Garbage Rejected", func(t *testing.T) {
		_, err := m.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})

	t.Run("Wrong Secret Rejected", func(t *testing.T) {
		other := security.NewTokenManager("another-secret-key-for-jwt-signing-98765")
		token, err := other.GenerateAccessToken(42, "alice")
		assert.NoError(t, err)

		_, err = m.ValidateToken(token)
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})
}
