package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	InitJWT("test-secret", 60)

	signed, expiresAt, err := GenerateToken("user-123", true)
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), expiresAt, 5*time.Second)

	claims, err := ParseToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.True(t, claims.IsModerator)
}

func TestParseToken_Invalid(t *testing.T) {
	InitJWT("test-secret", 60)

	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	InitJWT("first-secret", 60)
	signed, _, err := GenerateToken("user-123", false)
	require.NoError(t, err)

	InitJWT("second-secret", 60)
	_, err = ParseToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	InitJWT("test-secret", -1)
	signed, _, err := GenerateToken("user-123", false)
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
