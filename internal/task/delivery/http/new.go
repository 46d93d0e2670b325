package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/task"
	"smart-todo-backend/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	MarkCompleted(c *gin.Context)
	Overdue(c *gin.Context)
	HighPriority(c *gin.Context)
	ByStatus(c *gin.Context)
	DashboardStats(c *gin.Context)
	BulkUpdate(c *gin.Context)
	Analyze(c *gin.Context)
	Prioritize(c *gin.Context)
	ListComments(c *gin.Context)
	AddComment(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
