package usecase

import (
	"time"

	aiRepo "smart-todo-backend/internal/ai/repository"
	"smart-todo-backend/internal/analyzer"
	catRepo "smart-todo-backend/internal/category/repository"
	"smart-todo-backend/internal/task/repository"
	"smart-todo-backend/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo     repository.Repository
	catRepo  catRepo.Repository
	aiRepo   aiRepo.Repository
	analyzer analyzer.Analyzer
	l        log.Logger
	now      func() time.Time
}

// New creates a new task UseCase implementation.
func New(repo repository.Repository, catRepo catRepo.Repository, aiRepo aiRepo.Repository, az analyzer.Analyzer, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		catRepo:  catRepo,
		aiRepo:   aiRepo,
		analyzer: az,
		l:        l,
		now:      time.Now,
	}
}
