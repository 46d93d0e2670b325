package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. rg is the
// /context/api/v1 group. Collection-level views are registered before the
// :id routes so gin resolves them first.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	context := rg.Group("", mw.Auth())
	{
		entries := context.Group("/entries")
		{
			entries.POST("", h.Create)
			entries.GET("", h.List)
			entries.GET("/summary", h.Summary)
			entries.GET("/pending_processing", h.PendingProcessing)
			entries.GET("/high_relevance", h.HighRelevance)
			entries.GET("/with_extracted_tasks", h.WithExtractedTasks)
			entries.POST("/bulk_analyze", h.BulkAnalyze)
			entries.POST("/import_calendar", h.ImportCalendar)

			entries.GET("/:id", h.Detail)
			entries.PUT("/:id", h.Update)
			entries.PATCH("/:id", h.Update)
			entries.DELETE("/:id", h.Delete)
			entries.POST("/:id/analyze", h.Analyze)
		}

		insights := context.Group("/insights")
		{
			insights.GET("", h.ListInsights)
			insights.GET("/actionable", h.ActionableInsights)
			insights.GET("/high_confidence", h.HighConfidenceInsights)
			insights.GET("/:id", h.InsightDetail)
		}
	}
}
