package middleware

import (
	"strings"

	"realestate-backoffice/internal/auth"
	"realestate-backoffice/internal/errors"

	"github.com/gin-gonic/gin"
)

// OperatorKey is the context key holding the authenticated operator name.
const OperatorKey = "operator"

func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Error(errors.Unauthorized("authorization header required"))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Error(errors.Unauthorized("invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := auth.ValidateJWT(parts[1], secret)
		if err != nil {
			c.Error(errors.Unauthorized(err.Error()))
			c.Abort()
			return
		}

		c.Set(OperatorKey, claims.Username)
		c.Next()
	}
}
