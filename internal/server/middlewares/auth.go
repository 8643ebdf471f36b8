package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/unison/inventory-manager/api/v1"
	"github.com/unison/inventory-manager/internal/auth"
)

// TokenParser validates a bearer token.
type TokenParser interface {
	Parse(raw string) (auth.Principal, error)
}

// Authenticate attaches the principal named by a bearer token to the request
// context. Requests without a token go on as the process session; invalid
// tokens are refused with 401.
func Authenticate(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, v1.Error{Error: "expected a bearer token"})
			return
		}

		p, err := tokens.Parse(strings.TrimSpace(raw))
		if err != nil {
			zap.S().Named("auth").Debugw("token rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, v1.Error{Error: "invalid or expired token"})
			return
		}

		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}

// StaticPrincipal acts as p on every request. Used when authentication is disabled.
func StaticPrincipal(p auth.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}
