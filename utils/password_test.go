package utils

import (
	"testing"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("sekret123")
	require.NoError(t, err)
	assert.NotEqual(t, "sekret123", hash)

	ok, err := VerifyPassword(hash, "sekret123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "inne-haslo")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidatePasswordStrength(t *testing.T) {
	assert.ErrorIs(t, ValidatePasswordStrength("abc"), models.ErrWeakPassword)
	assert.ErrorIs(t, ValidatePasswordStrength("     abc    "), models.ErrWeakPassword)
	assert.NoError(t, ValidatePasswordStrength("abcdef"))
}

func TestNormalizeEmail(t *testing.T) {
	email, err := NormalizeEmail("  Anna.Kowalska@Example.PL ")
	require.NoError(t, err)
	assert.Equal(t, "anna.kowalska@example.pl", email)

	for _, bad := range []string{"", "   ", "anna", "Anna <anna@example.pl>", "anna@", "anna kowalska@example.pl", "anna@@example.pl"} {
		_, err := NormalizeEmail(bad)
		assert.ErrorIs(t, err, models.ErrInvalidEmail, bad)
	}
}
