package postgre

import (
	"context"
	"database/sql"

	repo "smart-todo-backend/internal/ai/repository"
	"smart-todo-backend/internal/model"
)

// GetPreferences retrieves a user's stored analyzer preferences.
// Returns zero-value preferences (UserID == "") when the user never saved any.
func (r *implRepository) GetPreferences(ctx context.Context, userID string) (model.UserAIPreferences, error) {
	const query = `
		SELECT user_id, auto_analyze_context, auto_suggest_deadline, preferred_provider,
		       timezone, workday_start_hour, workday_end_hour, min_confidence_threshold, updated_at
		FROM user_ai_preferences WHERE user_id = $1`

	var p model.UserAIPreferences
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.AutoAnalyzeContext, &p.AutoSuggestDeadline, &p.PreferredProvider,
		&p.Timezone, &p.WorkdayStartHour, &p.WorkdayEndHour, &p.MinConfidenceThreshold, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.UserAIPreferences{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetPreferences"), err)
		return model.UserAIPreferences{}, repo.ErrFailedToGet
	}
	return p, nil
}

// UpsertPreferences stores the full preference set for a user.
func (r *implRepository) UpsertPreferences(ctx context.Context, opt repo.UpsertPreferencesOptions) (model.UserAIPreferences, error) {
	const query = `
		INSERT INTO user_ai_preferences
			(user_id, auto_analyze_context, auto_suggest_deadline, preferred_provider,
			 timezone, workday_start_hour, workday_end_hour, min_confidence_threshold, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			auto_analyze_context = EXCLUDED.auto_analyze_context,
			auto_suggest_deadline = EXCLUDED.auto_suggest_deadline,
			preferred_provider = EXCLUDED.preferred_provider,
			timezone = EXCLUDED.timezone,
			workday_start_hour = EXCLUDED.workday_start_hour,
			workday_end_hour = EXCLUDED.workday_end_hour,
			min_confidence_threshold = EXCLUDED.min_confidence_threshold,
			updated_at = NOW()
		RETURNING user_id, auto_analyze_context, auto_suggest_deadline, preferred_provider,
		          timezone, workday_start_hour, workday_end_hour, min_confidence_threshold, updated_at`

	var p model.UserAIPreferences
	err := r.db.QueryRowContext(ctx, query,
		opt.UserID, opt.AutoAnalyzeContext, opt.AutoSuggestDeadline, opt.PreferredProvider,
		opt.Timezone, opt.WorkdayStartHour, opt.WorkdayEndHour, opt.MinConfidenceThreshold,
	).Scan(
		&p.UserID, &p.AutoAnalyzeContext, &p.AutoSuggestDeadline, &p.PreferredProvider,
		&p.Timezone, &p.WorkdayStartHour, &p.WorkdayEndHour, &p.MinConfidenceThreshold, &p.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertPreferences"), err)
		return model.UserAIPreferences{}, repo.ErrFailedToUpdate
	}
	return p, nil
}
