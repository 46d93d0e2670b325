package usecase

import (
	"context"

	"smart-todo-backend/internal/contextentry"
	repo "smart-todo-backend/internal/contextentry/repository"
	"smart-todo-backend/internal/model"
)

func (uc *implUseCase) Summary(ctx context.Context, sc model.Scope) (contextentry.SummaryOutput, error) {
	row, err := uc.repo.SummaryCounts(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summary SummaryCounts: %v", err)
		return contextentry.SummaryOutput{}, err
	}

	actionable, err := uc.repo.CountActionableInsights(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summary CountActionableInsights: %v", err)
		return contextentry.SummaryOutput{}, err
	}

	return contextentry.SummaryOutput{Summary: contextentry.Summary{
		Total:              row.Total,
		Pending:            row.Pending,
		Completed:          row.Completed,
		Failed:             row.Failed,
		HighRelevance:      row.HighRelevance,
		WithExtractedTasks: row.WithExtractedTasks,
		AvgRelevanceScore:  row.AvgRelevance,
		RecentActivity:     row.RecentActivity,
		BySource:           row.BySource,
		ActionableInsights: actionable,
	}}, nil
}

func (uc *implUseCase) listView(ctx context.Context, sc model.Scope, opt repo.ListEntriesOptions) (contextentry.ListOutput, error) {
	opt.UserID = sc.UserID
	if opt.Limit <= 0 {
		opt.Limit = 50
	}
	entries, total, err := uc.repo.ListEntries(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.listView ListEntries: %v", err)
		return contextentry.ListOutput{}, err
	}
	return contextentry.ListOutput{Entries: entries, Total: total, Limit: opt.Limit}, nil
}

func (uc *implUseCase) PendingProcessing(ctx context.Context, sc model.Scope) (contextentry.ListOutput, error) {
	return uc.listView(ctx, sc, repo.ListEntriesOptions{
		Status:  string(model.ProcessingStatusPending),
		OrderBy: "created_at ASC",
	})
}

func (uc *implUseCase) HighRelevance(ctx context.Context, sc model.Scope) (contextentry.ListOutput, error) {
	return uc.listView(ctx, sc, repo.ListEntriesOptions{
		MinRelevance: model.HighRelevanceThreshold,
		OrderBy:      "relevance_score DESC",
	})
}

func (uc *implUseCase) WithExtractedTasks(ctx context.Context, sc model.Scope) (contextentry.ListOutput, error) {
	return uc.listView(ctx, sc, repo.ListEntriesOptions{
		WithExtractedTasks: true,
		OrderBy:            "processed_at DESC",
	})
}
