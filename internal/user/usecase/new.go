package usecase

import (
	"smart-todo-backend/internal/user/repository"
	"smart-todo-backend/pkg/log"
	"smart-todo-backend/pkg/scope"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo       repository.Repository
	jwtManager scope.Manager
	l          log.Logger
}

// New creates a new user UseCase implementation.
func New(repo repository.Repository, jwtManager scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		jwtManager: jwtManager,
		l:          l,
	}
}
