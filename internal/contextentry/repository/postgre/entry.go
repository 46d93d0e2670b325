package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	repo "smart-todo-backend/internal/contextentry/repository"
	"smart-todo-backend/internal/model"
)

const entryColumns = `id, user_id, content, source_type, processing_status,
	relevance_score, sentiment_score, urgency_indicator,
	extracted_tasks, keywords, processed_at, created_at, updated_at`

func scanEntry(row interface{ Scan(...any) error }) (model.ContextEntry, error) {
	var e model.ContextEntry
	var extracted, keywords []byte
	var processedAt sql.NullTime
	err := row.Scan(
		&e.ID, &e.UserID, &e.Content, &e.SourceType, &e.ProcessingStatus,
		&e.RelevanceScore, &e.SentimentScore, &e.UrgencyIndicator,
		&extracted, &keywords, &processedAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return model.ContextEntry{}, err
	}
	if len(extracted) > 0 {
		if err := json.Unmarshal(extracted, &e.ExtractedTasks); err != nil {
			return model.ContextEntry{}, err
		}
	}
	if len(keywords) > 0 {
		if err := json.Unmarshal(keywords, &e.Keywords); err != nil {
			return model.ContextEntry{}, err
		}
	}
	if processedAt.Valid {
		e.ProcessedAt = &processedAt.Time
	}
	return e, nil
}

// CreateEntry inserts a new entry in the pending status.
func (r *implRepository) CreateEntry(ctx context.Context, opt repo.CreateEntryOptions) (model.ContextEntry, error) {
	query := fmt.Sprintf(`
		INSERT INTO context_entries
			(id, user_id, content, source_type, processing_status,
			 relevance_score, sentiment_score, urgency_indicator,
			 extracted_tasks, keywords, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'pending', 0, 0, 0, '[]', '[]', NOW(), NOW())
		RETURNING %s`, entryColumns)

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID, opt.Content, opt.SourceType))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEntry"), err)
		return model.ContextEntry{}, repo.ErrFailedToInsert
	}
	return entry, nil
}

// GetOneEntry retrieves a single entry by the provided filters (AND condition).
// Returns zero-value entry (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneEntry(ctx context.Context, opt repo.GetOneEntryOptions) (model.ContextEntry, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM context_entries WHERE %s LIMIT 1`, entryColumns, mods)

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.ContextEntry{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEntry"), err)
		return model.ContextEntry{}, repo.ErrFailedToGet
	}
	return entry, nil
}

// ListEntries returns a paginated list of entries and the total count.
func (r *implRepository) ListEntries(ctx context.Context, opt repo.ListEntriesOptions) ([]model.ContextEntry, int, error) {
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM context_entries WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListEntries"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM context_entries %s`, entryColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEntries"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var entries []model.ContextEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		entries = append(entries, entry)
	}
	return entries, total, nil
}

// UpdateEntryContent rewrites the editable fields and resets processing to pending.
func (r *implRepository) UpdateEntryContent(ctx context.Context, opt repo.UpdateEntryContentOptions) (model.ContextEntry, error) {
	query := fmt.Sprintf(`
		UPDATE context_entries
		SET content = $1, source_type = $2, processing_status = 'pending',
		    relevance_score = 0, sentiment_score = 0, urgency_indicator = 0,
		    extracted_tasks = '[]', keywords = '[]', processed_at = NULL, updated_at = NOW()
		WHERE id = $3 AND user_id = $4
		RETURNING %s`, entryColumns)

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, opt.Content, opt.SourceType, opt.ID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.ContextEntry{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEntryContent"), err)
		return model.ContextEntry{}, repo.ErrFailedToUpdate
	}
	return entry, nil
}

// DeleteEntry removes an entry (insights and logs cascade).
func (r *implRepository) DeleteEntry(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM context_entries WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEntry"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// SetEntryStatus moves an entry between processing states.
func (r *implRepository) SetEntryStatus(ctx context.Context, id string, status model.ProcessingStatus) error {
	const query = `UPDATE context_entries SET processing_status = $1, updated_at = NOW() WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetEntryStatus"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// SaveEntryAnalysis stores analyzer output and marks the entry completed.
func (r *implRepository) SaveEntryAnalysis(ctx context.Context, opt repo.SaveEntryAnalysisOptions) (model.ContextEntry, error) {
	extracted, err := json.Marshal(opt.ExtractedTasks)
	if err != nil {
		return model.ContextEntry{}, repo.ErrFailedToUpdate
	}
	keywords, err := json.Marshal(opt.Keywords)
	if err != nil {
		return model.ContextEntry{}, repo.ErrFailedToUpdate
	}

	query := fmt.Sprintf(`
		UPDATE context_entries
		SET processing_status = 'completed', relevance_score = $1, sentiment_score = $2,
		    urgency_indicator = $3, extracted_tasks = $4, keywords = $5,
		    processed_at = NOW(), updated_at = NOW()
		WHERE id = $6
		RETURNING %s`, entryColumns)

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query,
		opt.RelevanceScore, opt.SentimentScore, opt.UrgencyIndicator, extracted, keywords, opt.ID,
	))
	if err == sql.ErrNoRows {
		return model.ContextEntry{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveEntryAnalysis"), err)
		return model.ContextEntry{}, repo.ErrFailedToUpdate
	}
	return entry, nil
}

// SummaryCounts computes the context aggregate in two round trips.
func (r *implRepository) SummaryCounts(ctx context.Context, userID string) (repo.SummaryRow, error) {
	const query = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE processing_status = 'pending'),
			COUNT(*) FILTER (WHERE processing_status = 'completed'),
			COUNT(*) FILTER (WHERE processing_status = 'failed'),
			COUNT(*) FILTER (WHERE relevance_score >= 70),
			COUNT(*) FILTER (WHERE jsonb_array_length(extracted_tasks) > 0),
			COALESCE(AVG(relevance_score), 0),
			COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '7 days')
		FROM context_entries WHERE user_id = $1`

	row := repo.SummaryRow{BySource: map[model.ContextSource]int{}}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&row.Total, &row.Pending, &row.Completed, &row.Failed,
		&row.HighRelevance, &row.WithExtractedTasks,
		&row.AvgRelevance, &row.RecentActivity,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SummaryCounts"), err)
		return repo.SummaryRow{}, repo.ErrFailedToGet
	}

	const bySourceQuery = `
		SELECT source_type, COUNT(*) FROM context_entries WHERE user_id = $1 GROUP BY source_type`
	rows, err := r.db.QueryContext(ctx, bySourceQuery, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s by source: %v", r.dsn("SummaryCounts"), err)
		return repo.SummaryRow{}, repo.ErrFailedToGet
	}
	defer rows.Close()

	for rows.Next() {
		var source model.ContextSource
		var n int
		if err := rows.Scan(&source, &n); err != nil {
			return repo.SummaryRow{}, repo.ErrFailedToGet
		}
		row.BySource[source] = n
	}
	return row, nil
}
