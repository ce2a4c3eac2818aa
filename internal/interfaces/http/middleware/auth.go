package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"reward-ops.backend/pkg/jwt"
)

const (
	accountIDKey   = "account_id"
	accountKindKey = "account_kind"
)

// AuthMiddleware validates the bearer token and stores the actor's
// identity on the gin context
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "UNAUTHENTICATED",
				"message": "missing bearer token",
			})
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "UNAUTHENTICATED",
				"message": "invalid or expired token",
			})
			return
		}

		c.Set(accountIDKey, claims.AccountID)
		c.Set(accountKindKey, claims.Kind)
		c.Next()
	}
}

// GetAccountID returns the authenticated account id from the context
func GetAccountID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(accountIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// GetAccountKind returns the authenticated account kind from the context
func GetAccountKind(c *gin.Context) string {
	if v, ok := c.Get(accountKindKey); ok {
		if kind, ok := v.(string); ok {
			return kind
		}
	}
	return ""
}
