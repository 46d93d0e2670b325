package model

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

const (
	// DefaultPriorityScore is assigned when no AI analysis has run yet.
	DefaultPriorityScore = 50
	// HighPriorityThreshold marks a task as high priority on listings and stats.
	HighPriorityThreshold = 70
)

// Task is a single todo item. PriorityScore is an AI-assigned value in [0, 100].
type Task struct {
	ID                  string
	UserID              string
	Title               string
	Description         string
	Status              TaskStatus
	Priority            TaskPriority
	PriorityScore       int
	Deadline            *time.Time
	CategoryID          string
	CategoryName        string // joined from categories, read-only
	AISuggestedDeadline *time.Time
	AIReasoning         string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	CompletedAt         *time.Time
}

// IsOverdue reports whether the deadline has passed and the task is still open.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Deadline == nil {
		return false
	}
	if t.Status == TaskStatusCompleted || t.Status == TaskStatusCancelled {
		return false
	}
	return t.Deadline.Before(now)
}

// IsHighPriority reports whether the score crosses the high priority threshold.
func (t Task) IsHighPriority() bool {
	return t.PriorityScore >= HighPriorityThreshold
}

// UrgencyLevel buckets a task by overdue state and priority score.
func (t Task) UrgencyLevel(now time.Time) string {
	if t.IsOverdue(now) {
		return "overdue"
	}
	switch {
	case t.PriorityScore >= 80:
		return "critical"
	case t.PriorityScore >= 60:
		return "high"
	case t.PriorityScore >= 40:
		return "medium"
	default:
		return "low"
	}
}

// TaskComment is a note attached to a task by its owner.
type TaskComment struct {
	ID        string
	TaskID    string
	UserID    string
	Content   string
	CreatedAt time.Time
}
