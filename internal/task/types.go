package task

import (
	"time"

	"smart-todo-backend/internal/analyzer"
	"smart-todo-backend/internal/model"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	Priority    model.TaskPriority
	Deadline    *time.Time
	CategoryID  string
}

type ListInput struct {
	Status         string
	Priority       string
	CategoryID     string
	Search         string
	OverdueOnly    bool
	MinScore       int
	DeadlineBefore *time.Time
	DeadlineAfter  *time.Time
	Limit          int
	Offset         int
	OrderBy        string
}

type UpdateInput struct {
	ID            string
	Title         string
	Description   *string
	Status        model.TaskStatus
	Priority      model.TaskPriority
	Deadline      *time.Time
	ClearDeadline bool
	CategoryID    string
}

type BulkUpdateInput struct {
	TaskIDs    []string
	Status     model.TaskStatus
	Priority   model.TaskPriority
	CategoryID string
}

type AddCommentInput struct {
	TaskID  string
	Content string
}

// --- UseCase Outputs ---

type DetailOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type ByStatusOutput struct {
	Groups map[model.TaskStatus][]model.Task
}

// Stats is the dashboard aggregate over the user's tasks.
type Stats struct {
	Total            int
	Todo             int
	InProgress       int
	Completed        int
	Cancelled        int
	Overdue          int
	DueToday         int
	DueThisWeek      int
	HighPriority     int
	ByPriority       map[model.TaskPriority]int
	AvgPriorityScore float64
	CompletionRate   float64
}

type StatsOutput struct {
	Stats Stats
}

type BulkUpdateOutput struct {
	Updated int
}

type AnalysisOutput struct {
	Task     model.Task
	Analysis analyzer.TaskAnalysis
}

// PrioritizeInput narrows prioritization to specific tasks. An empty
// TaskIDs ranks every open task.
type PrioritizeInput struct {
	TaskIDs []string
}

type PrioritizationOutput struct {
	Result analyzer.Prioritization
}
