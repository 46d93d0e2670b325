package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrTitleTooShort    = errors.New("title must be at least 3 characters")
	ErrDeadlineInPast   = errors.New("deadline must be in the future")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrInvalidPriority  = errors.New("invalid task priority")
	ErrCategoryNotFound = errors.New("category not found")
	ErrAlreadyCompleted = errors.New("task is already completed")
	ErrEmptyBulkUpdate  = errors.New("bulk update requires task ids and at least one field")
	ErrTasksNotOwned    = errors.New("some tasks not found or access denied")
)
