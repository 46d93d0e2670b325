package usecase

import (
	"context"

	"smart-todo-backend/internal/contextentry"
	repo "smart-todo-backend/internal/contextentry/repository"
	"smart-todo-backend/internal/model"
)

func (uc *implUseCase) ListInsights(ctx context.Context, sc model.Scope, input contextentry.InsightListInput) (contextentry.InsightListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	opt := repo.ListInsightsOptions{
		UserID:      sc.UserID,
		InsightType: input.InsightType,
		Limit:       limit,
		Offset:      input.Offset,
	}
	if input.ActionableOnly {
		actionable := true
		opt.Actionable = &actionable
	}
	if input.HighConfidence {
		opt.MinConfidence = model.HighConfidenceThreshold
	}

	insights, total, err := uc.repo.ListInsights(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListInsights ListInsights: %v", err)
		return contextentry.InsightListOutput{}, err
	}
	return contextentry.InsightListOutput{Insights: insights, Total: total, Limit: limit, Offset: input.Offset}, nil
}

// InsightDetail retrieves a single insight by ID. Returns ErrInsightNotFound when not found.
func (uc *implUseCase) InsightDetail(ctx context.Context, sc model.Scope, id string) (model.ContextInsight, error) {
	in, err := uc.repo.GetOneInsight(ctx, repo.GetOneInsightOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.InsightDetail GetOneInsight: %v", err)
		return model.ContextInsight{}, err
	}
	if in.ID == "" {
		return model.ContextInsight{}, contextentry.ErrInsightNotFound
	}
	return in, nil
}
