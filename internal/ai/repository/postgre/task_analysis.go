package postgre

import (
	"context"
	"database/sql"
	"encoding/json"

	repo "smart-todo-backend/internal/ai/repository"
	"smart-todo-backend/internal/model"
)

// SaveTaskAnalysis replaces the stored analysis for a task.
func (r *implRepository) SaveTaskAnalysis(ctx context.Context, opt repo.SaveTaskAnalysisOptions) (model.TaskAIAnalysis, error) {
	factors, err := json.Marshal(opt.ScoreFactors)
	if err != nil {
		return model.TaskAIAnalysis{}, repo.ErrFailedToInsert
	}
	suggestions, err := json.Marshal(opt.EnhancementSuggestion)
	if err != nil {
		return model.TaskAIAnalysis{}, repo.ErrFailedToInsert
	}

	const query = `
		INSERT INTO task_ai_analyses
			(id, task_id, user_id, suggested_score, score_factors, score_confidence,
			 suggested_deadline, deadline_reasoning, deadline_confidence,
			 suggested_category, enhancement_suggestions, provider_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		ON CONFLICT (task_id) DO UPDATE SET
			suggested_score = EXCLUDED.suggested_score,
			score_factors = EXCLUDED.score_factors,
			score_confidence = EXCLUDED.score_confidence,
			suggested_deadline = EXCLUDED.suggested_deadline,
			deadline_reasoning = EXCLUDED.deadline_reasoning,
			deadline_confidence = EXCLUDED.deadline_confidence,
			suggested_category = EXCLUDED.suggested_category,
			enhancement_suggestions = EXCLUDED.enhancement_suggestions,
			provider_name = EXCLUDED.provider_name,
			created_at = NOW()
		RETURNING id, task_id, user_id, suggested_score, score_factors, score_confidence,
		          suggested_deadline, deadline_reasoning, deadline_confidence,
		          suggested_category, enhancement_suggestions, provider_name, created_at`

	row := r.db.QueryRowContext(ctx, query,
		opt.ID, opt.TaskID, opt.UserID, opt.SuggestedScore, factors, opt.ScoreConfidence,
		opt.SuggestedDeadline, opt.DeadlineReasoning, opt.DeadlineConfidence,
		opt.SuggestedCategory, suggestions, opt.ProviderName,
	)
	analysis, err := scanTaskAnalysis(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveTaskAnalysis"), err)
		return model.TaskAIAnalysis{}, repo.ErrFailedToInsert
	}
	return analysis, nil
}

// GetOneTaskAnalysis retrieves the stored analysis for a task.
// Returns zero-value (ID == "") when no analysis was stored yet.
func (r *implRepository) GetOneTaskAnalysis(ctx context.Context, opt repo.GetOneTaskAnalysisOptions) (model.TaskAIAnalysis, error) {
	const query = `
		SELECT id, task_id, user_id, suggested_score, score_factors, score_confidence,
		       suggested_deadline, deadline_reasoning, deadline_confidence,
		       suggested_category, enhancement_suggestions, provider_name, created_at
		FROM task_ai_analyses WHERE task_id = $1 AND user_id = $2`

	analysis, err := scanTaskAnalysis(r.db.QueryRowContext(ctx, query, opt.TaskID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.TaskAIAnalysis{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTaskAnalysis"), err)
		return model.TaskAIAnalysis{}, repo.ErrFailedToGet
	}
	return analysis, nil
}

func scanTaskAnalysis(row interface{ Scan(...any) error }) (model.TaskAIAnalysis, error) {
	var a model.TaskAIAnalysis
	var factors, suggestions []byte
	err := row.Scan(
		&a.ID, &a.TaskID, &a.UserID, &a.SuggestedScore, &factors, &a.ScoreConfidence,
		&a.SuggestedDeadline, &a.DeadlineReasoning, &a.DeadlineConfidence,
		&a.SuggestedCategory, &suggestions, &a.ProviderName, &a.CreatedAt,
	)
	if err != nil {
		return model.TaskAIAnalysis{}, err
	}
	if len(factors) > 0 {
		if err := json.Unmarshal(factors, &a.ScoreFactors); err != nil {
			return model.TaskAIAnalysis{}, err
		}
	}
	if len(suggestions) > 0 {
		if err := json.Unmarshal(suggestions, &a.EnhancementSuggestion); err != nil {
			return model.TaskAIAnalysis{}, err
		}
	}
	return a, nil
}
