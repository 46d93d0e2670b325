package postgre

import (
	"context"
	"fmt"
	"strings"

	repo "smart-todo-backend/internal/ai/repository"
	"smart-todo-backend/internal/model"
)

const aiRequestColumns = `id, user_id, request_type, status, provider_name, model_name,
	prompt_tokens, output_tokens, duration_ms, error_detail, created_at`

// CreateAIRequest inserts one audit row for an analyzer invocation.
func (r *implRepository) CreateAIRequest(ctx context.Context, opt repo.CreateAIRequestOptions) (model.AIRequest, error) {
	query := fmt.Sprintf(`
		INSERT INTO ai_requests
			(id, user_id, request_type, status, provider_name, model_name,
			 prompt_tokens, output_tokens, duration_ms, error_detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING %s`, aiRequestColumns)

	var req model.AIRequest
	err := r.db.QueryRowContext(ctx, query,
		opt.ID, opt.UserID, opt.RequestType, opt.Status, opt.ProviderName, opt.ModelName,
		opt.PromptTokens, opt.OutputTokens, opt.DurationMS, opt.ErrorDetail,
	).Scan(
		&req.ID, &req.UserID, &req.RequestType, &req.Status, &req.ProviderName, &req.ModelName,
		&req.PromptTokens, &req.OutputTokens, &req.DurationMS, &req.ErrorDetail, &req.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateAIRequest"), err)
		return model.AIRequest{}, repo.ErrFailedToInsert
	}
	return req, nil
}

// ListAIRequests returns a paginated audit log page and the total count.
func (r *implRepository) ListAIRequests(ctx context.Context, opt repo.ListAIRequestsOptions) ([]model.AIRequest, int, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.RequestType != "" {
		conditions = append(conditions, fmt.Sprintf("request_type = $%d", idx))
		args = append(args, opt.RequestType)
		idx++
	}
	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}

	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM ai_requests WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListAIRequests"), err)
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
		`SELECT %s FROM ai_requests WHERE %s ORDER BY created_at DESC%s`,
		aiRequestColumns, where, page,
	)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAIRequests"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var reqs []model.AIRequest
	for rows.Next() {
		var req model.AIRequest
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.RequestType, &req.Status, &req.ProviderName, &req.ModelName,
			&req.PromptTokens, &req.OutputTokens, &req.DurationMS, &req.ErrorDetail, &req.CreatedAt,
		); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		reqs = append(reqs, req)
	}
	return reqs, total, nil
}
