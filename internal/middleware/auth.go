package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"eisenhower-matrix/internal/model"
	"eisenhower-matrix/pkg/response"
)

const scopeKey = "scope"

// Auth resolves the bearer token to a Scope and stores it in the gin context.
// Requests without a valid token are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		scope, err := m.authSvc.GetCurrentUser(c.Request.Context(), token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "token resolution failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, scope)
		c.Next()
	}
}

// ScopeFromContext retrieves the Scope placed by Auth. The zero Scope comes
// back for unauthenticated routes.
func ScopeFromContext(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	scope, _ := v.(model.Scope)
	return scope
}
