package postgre

import (
	"context"

	"smart-todo-backend/internal/model"
	repo "smart-todo-backend/internal/task/repository"
)

// CreateComment inserts a comment on a task.
func (r *implRepository) CreateComment(ctx context.Context, opt repo.CreateCommentOptions) (model.TaskComment, error) {
	const query = `
		INSERT INTO task_comments (id, task_id, user_id, content, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, task_id, user_id, content, created_at`

	var c model.TaskComment
	err := r.db.QueryRowContext(ctx, query, opt.ID, opt.TaskID, opt.UserID, opt.Content).Scan(
		&c.ID, &c.TaskID, &c.UserID, &c.Content, &c.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateComment"), err)
		return model.TaskComment{}, repo.ErrFailedToInsert
	}
	return c, nil
}

// ListComments returns all comments of a task, oldest first.
func (r *implRepository) ListComments(ctx context.Context, taskID string) ([]model.TaskComment, error) {
	const query = `
		SELECT id, task_id, user_id, content, created_at
		FROM task_comments WHERE task_id = $1 ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListComments"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var comments []model.TaskComment
	for rows.Next() {
		var c model.TaskComment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.UserID, &c.Content, &c.CreatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		comments = append(comments, c)
	}
	return comments, nil
}
