package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/pkg/response"
)

const scopeContextKey = "auth_scope"

// Auth verifies the Bearer token and stores the caller's scope on the
// request context. Requests without a valid token are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(parts[1])
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth verify: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Set(scopeContextKey, model.Scope{
			UserID: payload.UserID,
			Email:  payload.Email,
		})
		c.Next()
	}
}

// GetScope returns the authenticated scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeContextKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
