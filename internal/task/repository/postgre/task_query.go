package postgre

import (
	"fmt"
	"strings"

	repo "smart-todo-backend/internal/task/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("t.id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("t.user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

func (r *implRepository) listConditions(opt repo.ListTasksOptions) ([]string, []any, int) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("t.user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}
	if opt.Priority != "" {
		conditions = append(conditions, fmt.Sprintf("t.priority = $%d", idx))
		args = append(args, opt.Priority)
		idx++
	}
	if opt.CategoryID != "" {
		conditions = append(conditions, fmt.Sprintf("t.category_id = $%d", idx))
		args = append(args, opt.CategoryID)
		idx++
	}
	if opt.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(t.title ILIKE $%d OR t.description ILIKE $%d)", idx, idx))
		args = append(args, "%"+opt.Search+"%")
		idx++
	}
	if opt.MinScore > 0 {
		conditions = append(conditions, fmt.Sprintf("t.priority_score >= $%d", idx))
		args = append(args, opt.MinScore)
		idx++
	}
	if opt.OpenOnly || opt.OverdueOnly {
		conditions = append(conditions, "t.status NOT IN ('completed', 'cancelled')")
	}
	if opt.OverdueOnly {
		conditions = append(conditions, fmt.Sprintf("t.deadline < $%d", idx))
		args = append(args, opt.Now)
		idx++
	}
	if opt.DeadlineBefore != nil {
		conditions = append(conditions, fmt.Sprintf("t.deadline <= $%d", idx))
		args = append(args, *opt.DeadlineBefore)
		idx++
	}
	if opt.DeadlineAfter != nil {
		conditions = append(conditions, fmt.Sprintf("t.deadline >= $%d", idx))
		args = append(args, *opt.DeadlineAfter)
		idx++
	}
	return conditions, args, idx
}

// buildCountQuery builds WHERE clause + args for counting Tasks (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions, args, _ := r.listConditions(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	conditions, args, idx := r.listConditions(opt)

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "t.priority_score DESC, t.created_at DESC"
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
