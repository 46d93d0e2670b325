package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/contextentry"
	"smart-todo-backend/pkg/log"
)

// Handler is the public interface for the context HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Analyze(c *gin.Context)
	BulkAnalyze(c *gin.Context)
	Summary(c *gin.Context)
	PendingProcessing(c *gin.Context)
	HighRelevance(c *gin.Context)
	WithExtractedTasks(c *gin.Context)
	ImportCalendar(c *gin.Context)
	ListInsights(c *gin.Context)
	InsightDetail(c *gin.Context)
	ActionableInsights(c *gin.Context)
	HighConfidenceInsights(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc contextentry.UseCase
}

// New creates a new HTTP handler for the context domain.
func New(l log.Logger, uc contextentry.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
