package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, claims, err := issuer.GenerateToken("sess-1", "user-1", "anna@example.pl", true)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID())

	parsed, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
	assert.Equal(t, "anna@example.pl", parsed.Email)
	assert.True(t, parsed.IsAdmin)
	assert.Equal(t, "sess-1", parsed.SessionID())
}

func TestValidateTokenRejects(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	t.Run("expired", func(t *testing.T) {
		old := NewTokenIssuer("test-secret", time.Hour)
		old.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }
		token, _, err := old.GenerateToken("sess-1", "user-1", "a@b.pl", false)
		require.NoError(t, err)

		_, err = issuer.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("other secret", func(t *testing.T) {
		other := NewTokenIssuer("other-secret", time.Hour)
		token, _, err := other.GenerateToken("sess-1", "user-1", "a@b.pl", false)
		require.NoError(t, err)

		_, err = issuer.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("unsigned", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
			UserID:           "user-1",
			RegisteredClaims: jwt.RegisteredClaims{ID: "sess-1"},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuer.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("no session id", func(t *testing.T) {
		token, _, err := issuer.GenerateToken("", "user-1", "a@b.pl", false)
		require.NoError(t, err)

		_, err = issuer.ValidateToken(token)
		assert.Error(t, err)
	})
}

func TestNewTokenIssuerDefaultsExpiry(t *testing.T) {
	assert.Equal(t, 24*time.Hour, NewTokenIssuer("s", 0).Expiry())
}
