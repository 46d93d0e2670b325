package postgre

import (
	"fmt"
	"strings"

	repo "smart-todo-backend/internal/contextentry/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneEntry.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneEntryOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

func (r *implRepository) listConditions(opt repo.ListEntriesOptions) ([]string, []any, int) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.SourceType != "" {
		conditions = append(conditions, fmt.Sprintf("source_type = $%d", idx))
		args = append(args, opt.SourceType)
		idx++
	}
	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("processing_status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}
	if opt.Search != "" {
		conditions = append(conditions, fmt.Sprintf("content ILIKE $%d", idx))
		args = append(args, "%"+opt.Search+"%")
		idx++
	}
	if opt.MinRelevance > 0 {
		conditions = append(conditions, fmt.Sprintf("relevance_score >= $%d", idx))
		args = append(args, opt.MinRelevance)
		idx++
	}
	if opt.WithExtractedTasks {
		conditions = append(conditions, "jsonb_array_length(extracted_tasks) > 0")
	}
	return conditions, args, idx
}

// buildCountQuery builds WHERE clause + args for counting entries (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListEntriesOptions) (string, []any) {
	conditions, args, _ := r.listConditions(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListEntries.
func (r *implRepository) buildListQuery(opt repo.ListEntriesOptions) (string, []any) {
	var parts []string
	conditions, args, idx := r.listConditions(opt)

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
