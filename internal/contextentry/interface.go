package contextentry

import (
	"context"

	"smart-todo-backend/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Entry CRUD
	Create(ctx context.Context, sc model.Scope, input CreateInput) (DetailOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (DetailOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Processing
	Analyze(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	BulkAnalyze(ctx context.Context, sc model.Scope, ids []string) (BulkAnalyzeOutput, error)
	ProcessPending(ctx context.Context, batchSize int) (int, error)

	// Views
	Summary(ctx context.Context, sc model.Scope) (SummaryOutput, error)
	PendingProcessing(ctx context.Context, sc model.Scope) (ListOutput, error)
	HighRelevance(ctx context.Context, sc model.Scope) (ListOutput, error)
	WithExtractedTasks(ctx context.Context, sc model.Scope) (ListOutput, error)

	// Calendar import
	ImportCalendar(ctx context.Context, sc model.Scope, input ImportCalendarInput) (ImportOutput, error)

	// Insights
	ListInsights(ctx context.Context, sc model.Scope, input InsightListInput) (InsightListOutput, error)
	InsightDetail(ctx context.Context, sc model.Scope, id string) (model.ContextInsight, error)
}
