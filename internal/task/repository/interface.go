package repository

import (
	"context"
	"time"

	"smart-todo-backend/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
	CommentRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, userID, id string) error
	BulkUpdateTasks(ctx context.Context, opt BulkUpdateTasksOptions) (int, error)
	CountOwnedTasks(ctx context.Context, userID string, ids []string) (int, error)
	StatsCounts(ctx context.Context, userID string, now time.Time) (StatsRow, error)
	SetAISuggestion(ctx context.Context, opt SetAISuggestionOptions) error
}

// CommentRepository defines data access methods for task comments.
type CommentRepository interface {
	CreateComment(ctx context.Context, opt CreateCommentOptions) (model.TaskComment, error)
	ListComments(ctx context.Context, taskID string) ([]model.TaskComment, error)
}
