package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")

	jwtSecret []byte
	jwtTTL    time.Duration
)

// Claims carried by an access token. IsModerator gates the moderation routes
// without a database round trip on every request.
type Claims struct {
	UserID      string `json:"user_id"`
	IsModerator bool   `json:"is_moderator"`
	jwt.RegisteredClaims
}

// InitJWT configures the signing secret and token lifetime. Must be called
// once at startup before tokens are issued or parsed.
func InitJWT(secret string, ttlMinutes int) {
	jwtSecret = []byte(secret)
	jwtTTL = time.Duration(ttlMinutes) * time.Minute
}

// GenerateToken signs an HS256 access token for the user.
func GenerateToken(userID string, isModerator bool) (string, time.Time, error) {
	expiresAt := time.Now().Add(jwtTTL)

	claims := &Claims{
		UserID:      userID,
		IsModerator: isModerator,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken validates a signed access token and returns its claims.
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
