package repository

import (
	"time"

	"smart-todo-backend/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	ID            string
	UserID        string
	Title         string
	Description   string
	Priority      model.TaskPriority
	PriorityScore int
	Deadline      *time.Time
	CategoryID    string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	UserID         string
	Status         string
	Priority       string
	CategoryID     string
	Search         string
	OverdueOnly    bool
	OpenOnly       bool
	MinScore       int
	DeadlineBefore *time.Time
	DeadlineAfter  *time.Time
	Now            time.Time
	Limit          int
	Offset         int
	OrderBy        string
}

// UpdateTaskOptions holds the full field set to write for an existing Task.
type UpdateTaskOptions struct {
	ID            string
	UserID        string
	Title         string
	Description   string
	Status        model.TaskStatus
	Priority      model.TaskPriority
	PriorityScore int
	Deadline      *time.Time
	CategoryID    string
	CompletedAt   *time.Time
}

// BulkUpdateTasksOptions applies the same field changes to a set of tasks.
// Zero-value fields are left untouched.
type BulkUpdateTasksOptions struct {
	UserID      string
	TaskIDs     []string
	Status      model.TaskStatus
	Priority    model.TaskPriority
	CategoryID  string
	CompletedAt *time.Time
}

// SetAISuggestionOptions stores analyzer output on the task row.
type SetAISuggestionOptions struct {
	ID                string
	UserID            string
	SuggestedDeadline *time.Time
	Reasoning         string
}

// StatsRow is the raw dashboard aggregate for one user.
type StatsRow struct {
	Total            int
	Todo             int
	InProgress       int
	Completed        int
	Cancelled        int
	Overdue          int
	DueToday         int
	DueThisWeek      int
	HighPriority     int
	PriorityLow      int
	PriorityMedium   int
	PriorityHigh     int
	PriorityUrgent   int
	AvgPriorityScore float64
}

// CreateCommentOptions holds parameters for inserting a task comment.
type CreateCommentOptions struct {
	ID      string
	TaskID  string
	UserID  string
	Content string
}
