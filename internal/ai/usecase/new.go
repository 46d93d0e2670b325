package usecase

import (
	"smart-todo-backend/internal/ai/repository"
	"smart-todo-backend/pkg/llmprovider"
	"smart-todo-backend/pkg/log"
)

// providerSource is the slice of llmprovider.Manager this use case depends on.
type providerSource interface {
	HasProviders() bool
	Providers() []llmprovider.Provider
}

// implUseCase is the private implementation of ai.UseCase.
type implUseCase struct {
	repo      repository.Repository
	providers providerSource
	l         log.Logger
}

// New creates a new AI UseCase implementation.
func New(repo repository.Repository, providers providerSource, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		providers: providers,
		l:         l,
	}
}
