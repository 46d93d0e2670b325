package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/user"
	repo "smart-todo-backend/internal/user/repository"
	"smart-todo-backend/pkg/scope"
)

// Register creates a new account and returns it with a signed token.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if existing.ID != "" {
		return user.AuthOutput{}, user.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GenerateFromPassword: %v", err)
		return user.AuthOutput{}, err
	}

	created, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(input.FullName),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return user.AuthOutput{}, err
	}

	token, err := uc.jwtManager.Generate(scope.Payload{UserID: created.ID, Email: created.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register Generate: %v", err)
		return user.AuthOutput{}, err
	}

	return user.AuthOutput{User: created, Token: token}, nil
}

// Login verifies credentials and returns a signed token.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if existing.ID == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(input.Password)); err != nil {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	token, err := uc.jwtManager.Generate(scope.Payload{UserID: existing.ID, Email: existing.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login Generate: %v", err)
		return user.AuthOutput{}, err
	}

	return user.AuthOutput{User: existing, Token: token}, nil
}

// Me returns the authenticated user's profile.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (user.DetailOutput, error) {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneUser: %v", err)
		return user.DetailOutput{}, err
	}
	if existing.ID == "" {
		return user.DetailOutput{}, user.ErrUserNotFound
	}
	return user.DetailOutput{User: existing}, nil
}
