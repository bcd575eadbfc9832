package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sothea-dev/shoppos-api/internal/domain/enum"
	"github.com/sothea-dev/shoppos-api/internal/presentation/http/dto/response"
	"github.com/sothea-dev/shoppos-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		// Set account info in context
		c.Set("account_id", claims.AccountID)
		c.Set("account_username", claims.Username)
		c.Set("account_display_name", claims.DisplayName)
		c.Set("account_kind", claims.Kind)

		c.Next()
	}
}

// RequireAdmin creates a middleware that only admits admin accounts
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := c.GetString("account_kind")
		if kind != enum.AccountKindAdmin.String() {
			response.ErrorWithCode(c, 403, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
