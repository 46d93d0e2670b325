package usecase

import (
	"time"

	"smart-todo-backend/internal/analyzer"
	"smart-todo-backend/internal/contextentry/repository"
	"smart-todo-backend/pkg/gcalendar"
	"smart-todo-backend/pkg/log"
)

// implUseCase is the private implementation of contextentry.UseCase.
type implUseCase struct {
	repo     repository.Repository
	analyzer analyzer.Analyzer
	gcal     *gcalendar.Client // nil when calendar import is not configured
	l        log.Logger
	now      func() time.Time
}

// New creates a new context UseCase implementation. gcal may be nil.
func New(repo repository.Repository, az analyzer.Analyzer, gcal *gcalendar.Client, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		analyzer: az,
		gcal:     gcal,
		l:        l,
		now:      time.Now,
	}
}
