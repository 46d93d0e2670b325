package usecase

import (
	"smart-todo-backend/internal/category/repository"
	"smart-todo-backend/pkg/log"
)

// implUseCase is the private implementation of category.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new category UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}

// coalesce returns the first non-empty string, used for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
