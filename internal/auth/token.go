package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const activationTokenBytes = 20

// GenerateActivationToken returns a fresh single-use account activation token.
// The token proves control of the invited email address, so it must come from
// a cryptographically unpredictable source.
func GenerateActivationToken() (string, error) {
	return randomHex(activationTokenBytes)
}

// GenerateRefreshToken returns a long random token for session refresh.
func GenerateRefreshToken() (string, error) {
	return randomHex(32)
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
