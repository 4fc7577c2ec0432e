package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"cashback-tracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxResellerCPFKey = "reseller_cpf"

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

		cpf, err := m.tokenValidator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxResellerCPFKey, cpf)
		c.Next()
	}
}

// GetResellerCPF returns the CPF the presented token was issued to.
func GetResellerCPF(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxResellerCPFKey)
	if !exists {
		return "", false
	}

	cpf, ok := v.(string)
	return cpf, ok && cpf != ""
}
