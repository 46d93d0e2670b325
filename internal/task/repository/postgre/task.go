package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"smart-todo-backend/internal/model"
	repo "smart-todo-backend/internal/task/repository"
)

const taskColumns = `t.id, t.user_id, t.title, t.description, t.status, t.priority, t.priority_score,
	t.deadline, COALESCE(t.category_id, ''), COALESCE(c.name, ''),
	t.ai_suggested_deadline, t.ai_reasoning, t.created_at, t.updated_at, t.completed_at`

const taskFrom = `tasks t LEFT JOIN categories c ON c.id = t.category_id`

func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var t model.Task
	var deadline, aiDeadline, completedAt sql.NullTime
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.PriorityScore,
		&deadline, &t.CategoryID, &t.CategoryName,
		&aiDeadline, &t.AIReasoning, &t.CreatedAt, &t.UpdatedAt, &completedAt,
	)
	if err != nil {
		return model.Task{}, err
	}
	if deadline.Valid {
		t.Deadline = &deadline.Time
	}
	if aiDeadline.Valid {
		t.AISuggestedDeadline = &aiDeadline.Time
	}
	if completedAt.Valid {
		t.CompletedAt = &completedAt.Time
	}
	return t, nil
}

// CreateTask inserts a new Task row and returns the created entity.
// Assigning a category bumps its usage counter.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		WITH inserted AS (
			INSERT INTO tasks
				(id, user_id, title, description, status, priority, priority_score,
				 deadline, category_id, ai_reasoning, created_at, updated_at)
			VALUES ($1, $2, $3, $4, 'todo', $5, $6, $7, NULLIF($8, ''), '', NOW(), NOW())
			RETURNING *
		)
		SELECT %s FROM inserted t LEFT JOIN categories c ON c.id = t.category_id`,
		taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.UserID, opt.Title, opt.Description, opt.Priority, opt.PriorityScore,
		opt.Deadline, opt.CategoryID,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	if opt.CategoryID != "" {
		r.bumpCategoryUsage(ctx, opt.CategoryID)
	}
	return task, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s LIMIT 1`, taskColumns, taskFrom, mods)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns a paginated list of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", taskFrom, countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM %s %s`, taskColumns, taskFrom, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	return tasks, total, nil
}

// UpdateTask writes the full field set for a Task and returns the updated entity.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		WITH updated AS (
			UPDATE tasks
			SET title = $1, description = $2, status = $3, priority = $4, priority_score = $5,
			    deadline = $6, category_id = NULLIF($7, ''), completed_at = $8, updated_at = NOW()
			WHERE id = $9 AND user_id = $10
			RETURNING *
		)
		SELECT %s FROM updated t LEFT JOIN categories c ON c.id = t.category_id`,
		taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, opt.Status, opt.Priority, opt.PriorityScore,
		opt.Deadline, opt.CategoryID, opt.CompletedAt, opt.ID, opt.UserID,
	))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return task, nil
}

// DeleteTask removes a Task (and its comments via FK cascade) by ID.
func (r *implRepository) DeleteTask(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// BulkUpdateTasks applies the same field changes to a set of tasks and
// returns how many rows changed.
func (r *implRepository) BulkUpdateTasks(ctx context.Context, opt repo.BulkUpdateTasksOptions) (int, error) {
	sets := "updated_at = NOW()"
	args := []any{}
	idx := 1

	if opt.Status != "" {
		sets += fmt.Sprintf(", status = $%d", idx)
		args = append(args, opt.Status)
		idx++
		sets += fmt.Sprintf(", completed_at = $%d", idx)
		args = append(args, opt.CompletedAt)
		idx++
	}
	if opt.Priority != "" {
		sets += fmt.Sprintf(", priority = $%d", idx)
		args = append(args, opt.Priority)
		idx++
	}
	if opt.CategoryID != "" {
		sets += fmt.Sprintf(", category_id = $%d", idx)
		args = append(args, opt.CategoryID)
		idx++
	}

	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE user_id = $%d AND id = ANY($%d)`, sets, idx, idx+1)
	args = append(args, opt.UserID, pq.Array(opt.TaskIDs))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("BulkUpdateTasks"), err)
		return 0, repo.ErrFailedToUpdate
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// CountOwnedTasks returns how many of the given ids belong to the user.
func (r *implRepository) CountOwnedTasks(ctx context.Context, userID string, ids []string) (int, error) {
	const query = `SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND id = ANY($2)`
	var n int
	if err := r.db.QueryRowContext(ctx, query, userID, pq.Array(ids)).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountOwnedTasks"), err)
		return 0, repo.ErrFailedToGet
	}
	return n, nil
}

// SetAISuggestion stores analyzer output on the task row.
func (r *implRepository) SetAISuggestion(ctx context.Context, opt repo.SetAISuggestionOptions) error {
	const query = `
		UPDATE tasks
		SET ai_suggested_deadline = $1, ai_reasoning = $2, updated_at = NOW()
		WHERE id = $3 AND user_id = $4`
	if _, err := r.db.ExecContext(ctx, query, opt.SuggestedDeadline, opt.Reasoning, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetAISuggestion"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// StatsCounts computes the dashboard aggregate in one round trip.
func (r *implRepository) StatsCounts(ctx context.Context, userID string, now time.Time) (repo.StatsRow, error) {
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	endOfWeek := endOfDay.AddDate(0, 0, 7)

	const query = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'todo'),
			COUNT(*) FILTER (WHERE status = 'in_progress'),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'cancelled'),
			COUNT(*) FILTER (WHERE deadline < $2 AND status NOT IN ('completed', 'cancelled')),
			COUNT(*) FILTER (WHERE deadline >= $2 AND deadline <= $3 AND status NOT IN ('completed', 'cancelled')),
			COUNT(*) FILTER (WHERE deadline >= $2 AND deadline <= $4 AND status NOT IN ('completed', 'cancelled')),
			COUNT(*) FILTER (WHERE priority_score >= 70 AND status NOT IN ('completed', 'cancelled')),
			COUNT(*) FILTER (WHERE priority = 'low'),
			COUNT(*) FILTER (WHERE priority = 'medium'),
			COUNT(*) FILTER (WHERE priority = 'high'),
			COUNT(*) FILTER (WHERE priority = 'urgent'),
			COALESCE(AVG(priority_score), 0)
		FROM tasks WHERE user_id = $1`

	var s repo.StatsRow
	err := r.db.QueryRowContext(ctx, query, userID, now, endOfDay, endOfWeek).Scan(
		&s.Total, &s.Todo, &s.InProgress, &s.Completed, &s.Cancelled,
		&s.Overdue, &s.DueToday, &s.DueThisWeek, &s.HighPriority,
		&s.PriorityLow, &s.PriorityMedium, &s.PriorityHigh, &s.PriorityUrgent,
		&s.AvgPriorityScore,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("StatsCounts"), err)
		return repo.StatsRow{}, repo.ErrFailedToGet
	}
	return s, nil
}

func (r *implRepository) bumpCategoryUsage(ctx context.Context, categoryID string) {
	const query = `UPDATE categories SET usage_frequency = usage_frequency + 1 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, categoryID); err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("bumpCategoryUsage"), err)
	}
}
