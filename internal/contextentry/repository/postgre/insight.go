package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	repo "smart-todo-backend/internal/contextentry/repository"
	"smart-todo-backend/internal/model"
)

const insightColumns = `id, context_entry_id, user_id, insight_type, content,
	confidence_score, is_actionable, COALESCE(related_task_id, ''), created_at`

func scanInsight(row interface{ Scan(...any) error }) (model.ContextInsight, error) {
	var in model.ContextInsight
	err := row.Scan(
		&in.ID, &in.ContextEntryID, &in.UserID, &in.InsightType, &in.Content,
		&in.ConfidenceScore, &in.IsActionable, &in.RelatedTaskID, &in.CreatedAt,
	)
	return in, err
}

// ReplaceInsights swaps the stored insights of an entry for a fresh set.
// Reprocessing an entry must not leave stale findings behind.
func (r *implRepository) ReplaceInsights(ctx context.Context, entryID string, opts []repo.CreateInsightOptions) ([]model.ContextInsight, error) {
	const deleteQuery = `DELETE FROM context_insights WHERE context_entry_id = $1`
	if _, err := r.db.ExecContext(ctx, deleteQuery, entryID); err != nil {
		r.l.Errorf(ctx, "%s delete: %v", r.dsn("ReplaceInsights"), err)
		return nil, repo.ErrFailedToUpdate
	}

	query := fmt.Sprintf(`
		INSERT INTO context_insights
			(id, context_entry_id, user_id, insight_type, content,
			 confidence_score, is_actionable, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING %s`, insightColumns)

	insights := make([]model.ContextInsight, 0, len(opts))
	for _, opt := range opts {
		in, err := scanInsight(r.db.QueryRowContext(ctx, query,
			opt.ID, entryID, opt.UserID, opt.InsightType, opt.Content,
			opt.ConfidenceScore, opt.IsActionable,
		))
		if err != nil {
			r.l.Errorf(ctx, "%s insert: %v", r.dsn("ReplaceInsights"), err)
			return nil, repo.ErrFailedToInsert
		}
		insights = append(insights, in)
	}
	return insights, nil
}

// ListInsights returns a paginated list of the user's insights and the total count.
func (r *implRepository) ListInsights(ctx context.Context, opt repo.ListInsightsOptions) ([]model.ContextInsight, int, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.InsightType != "" {
		conditions = append(conditions, fmt.Sprintf("insight_type = $%d", idx))
		args = append(args, opt.InsightType)
		idx++
	}
	if opt.Actionable != nil {
		conditions = append(conditions, fmt.Sprintf("is_actionable = $%d", idx))
		args = append(args, *opt.Actionable)
		idx++
	}
	if opt.MinConfidence > 0 {
		conditions = append(conditions, fmt.Sprintf("confidence_score >= $%d", idx))
		args = append(args, opt.MinConfidence)
		idx++
	}

	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM context_insights WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListInsights"), err)
		return nil, 0, repo.ErrFailedToList
	}

	page := ""
	if opt.Limit > 0 {
		page = fmt.Sprintf(" LIMIT $%d", idx)
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		page += fmt.Sprintf(" OFFSET $%d", idx)
		args = append(args, opt.Offset)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM context_insights WHERE %s ORDER BY confidence_score DESC, created_at DESC%s`,
		insightColumns, where, page,
	)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListInsights"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var insights []model.ContextInsight
	for rows.Next() {
		in, err := scanInsight(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		insights = append(insights, in)
	}
	return insights, total, nil
}

// GetOneInsight retrieves a single insight by ID scoped to its owner.
// Returns zero-value insight (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneInsight(ctx context.Context, opt repo.GetOneInsightOptions) (model.ContextInsight, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM context_insights WHERE id = $1 AND user_id = $2 LIMIT 1`,
		insightColumns,
	)
	in, err := scanInsight(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.ContextInsight{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneInsight"), err)
		return model.ContextInsight{}, repo.ErrFailedToGet
	}
	return in, nil
}

// ListEntryInsights returns all insights of one entry.
func (r *implRepository) ListEntryInsights(ctx context.Context, entryID string) ([]model.ContextInsight, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM context_insights WHERE context_entry_id = $1 ORDER BY confidence_score DESC`,
		insightColumns,
	)
	rows, err := r.db.QueryContext(ctx, query, entryID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEntryInsights"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var insights []model.ContextInsight
	for rows.Next() {
		in, err := scanInsight(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		insights = append(insights, in)
	}
	return insights, nil
}

// CountActionableInsights counts the user's actionable insights.
func (r *implRepository) CountActionableInsights(ctx context.Context, userID string) (int, error) {
	const query = `SELECT COUNT(*) FROM context_insights WHERE user_id = $1 AND is_actionable`
	var n int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountActionableInsights"), err)
		return 0, repo.ErrFailedToGet
	}
	return n, nil
}
