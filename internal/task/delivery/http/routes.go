package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require authentication. Collection-level views are registered
// before the :id routes so gin resolves them first.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/overdue", h.Overdue)
		tasks.GET("/high_priority", h.HighPriority)
		tasks.GET("/by_status", h.ByStatus)
		tasks.GET("/dashboard_stats", h.DashboardStats)
		tasks.POST("/bulk_update", h.BulkUpdate)
		tasks.POST("/ai_prioritization", h.Prioritize)

		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.PATCH("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/mark_completed", h.MarkCompleted)
		tasks.POST("/:id/ai_analysis", h.Analyze)
		tasks.GET("/:id/comments", h.ListComments)
		tasks.POST("/:id/comments", h.AddComment)
	}
}
