package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ai := rg.Group("/ai", mw.Auth())
	{
		ai.GET("/providers", h.Providers)
		ai.GET("/requests", h.ListRequests)
		ai.GET("/preferences", h.GetPreferences)
		ai.PUT("/preferences", h.UpdatePreferences)
		ai.PATCH("/preferences", h.UpdatePreferences)
	}
}
