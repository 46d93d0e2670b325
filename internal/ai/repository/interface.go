package repository

import (
	"context"

	"smart-todo-backend/internal/model"
)

// Repository is the composed interface for the AI domain data store.
type Repository interface {
	AIRequestRepository
	PreferencesRepository
	TaskAnalysisRepository
}

// AIRequestRepository persists the audit trail of analyzer invocations.
type AIRequestRepository interface {
	CreateAIRequest(ctx context.Context, opt CreateAIRequestOptions) (model.AIRequest, error)
	ListAIRequests(ctx context.Context, opt ListAIRequestsOptions) ([]model.AIRequest, int, error)
}

// PreferencesRepository stores per-user analyzer preferences.
type PreferencesRepository interface {
	GetPreferences(ctx context.Context, userID string) (model.UserAIPreferences, error)
	UpsertPreferences(ctx context.Context, opt UpsertPreferencesOptions) (model.UserAIPreferences, error)
}

// TaskAnalysisRepository stores the latest analysis result per task.
type TaskAnalysisRepository interface {
	SaveTaskAnalysis(ctx context.Context, opt SaveTaskAnalysisOptions) (model.TaskAIAnalysis, error)
	GetOneTaskAnalysis(ctx context.Context, opt GetOneTaskAnalysisOptions) (model.TaskAIAnalysis, error)
}
