package ai

import (
	"context"

	"smart-todo-backend/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Providers(ctx context.Context) (ProvidersOutput, error)
	ListRequests(ctx context.Context, sc model.Scope, input RequestListInput) (RequestListOutput, error)
	GetPreferences(ctx context.Context, sc model.Scope) (PreferencesOutput, error)
	UpdatePreferences(ctx context.Context, sc model.Scope, input UpdatePreferencesInput) (PreferencesOutput, error)
}
