package postgre

import (
	"context"

	repo "smart-todo-backend/internal/contextentry/repository"
)

// CreateProcessingLog records one processing attempt for an entry.
func (r *implRepository) CreateProcessingLog(ctx context.Context, opt repo.CreateProcessingLogOptions) error {
	const query = `
		INSERT INTO context_processing_logs
			(id, context_entry_id, status, detail, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`
	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.ContextEntryID, opt.Status, opt.Detail, opt.DurationMS,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProcessingLog"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}
