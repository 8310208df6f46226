package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateActivationToken(t *testing.T) {
	token, err := GenerateActivationToken()
	require.NoError(t, err)

	assert.Len(t, token, 40)
	_, err = hex.DecodeString(token)
	assert.NoError(t, err, "token should be hex-encoded")
}

func TestGenerateActivationToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateActivationToken()
		require.NoError(t, err)
		assert.False(t, seen[token], "tokens must not repeat")
		seen[token] = true
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	token, err := GenerateRefreshToken()
	require.NoError(t, err)

	assert.Len(t, token, 64)

	other, err := GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
