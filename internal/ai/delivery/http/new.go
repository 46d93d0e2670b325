package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/ai"
	"smart-todo-backend/pkg/log"
)

// Handler is the public interface for the AI HTTP delivery layer.
type Handler interface {
	Providers(c *gin.Context)
	ListRequests(c *gin.Context)
	GetPreferences(c *gin.Context)
	UpdatePreferences(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc ai.UseCase
}

// New creates a new HTTP handler for the AI domain.
func New(l log.Logger, uc ai.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
