package middleware

import (
	"net/http"
	"strings"

	"connect_backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid session token. Operations
// behind it can assume an authenticated user; anonymous access fails here
// with a request-level rejection before any handler runs.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("isModerator", claims.IsModerator)
		c.Next()
	}
}

// ModeratorMiddleware restricts a route group to moderators.
func ModeratorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isModerator, exists := c.Get("isModerator")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		if flag, ok := isModerator.(bool); !ok || !flag {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: moderators only"})
			return
		}

		c.Next()
	}
}

// GetUserID extracts the authenticated user's ID from the request context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
