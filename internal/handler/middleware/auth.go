package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"skybook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxCustomerIDKey = "customer_id"

// AuthMiddleware validates bearer tokens issued by the external auth service
// and supplies the verified customer id to handlers. Token issuance lives
// outside this service.
type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		customerID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxCustomerIDKey, customerID)
		c.Next()
	}
}

func GetCustomerID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ctxCustomerIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
