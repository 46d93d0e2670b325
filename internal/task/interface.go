package task

import (
	"context"

	"smart-todo-backend/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, sc model.Scope, input CreateInput) (DetailOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (DetailOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Workflow views
	MarkCompleted(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Overdue(ctx context.Context, sc model.Scope) (ListOutput, error)
	HighPriority(ctx context.Context, sc model.Scope) (ListOutput, error)
	ByStatus(ctx context.Context, sc model.Scope) (ByStatusOutput, error)
	DashboardStats(ctx context.Context, sc model.Scope) (StatsOutput, error)
	BulkUpdate(ctx context.Context, sc model.Scope, input BulkUpdateInput) (BulkUpdateOutput, error)

	// AI assistance
	Analyze(ctx context.Context, sc model.Scope, id string) (AnalysisOutput, error)
	Prioritize(ctx context.Context, sc model.Scope, input PrioritizeInput) (PrioritizationOutput, error)

	// Comments
	ListComments(ctx context.Context, sc model.Scope, taskID string) ([]model.TaskComment, error)
	AddComment(ctx context.Context, sc model.Scope, input AddCommentInput) (model.TaskComment, error)
}
