package http

import (
	"smart-todo-backend/internal/task"
	pkgErrors "smart-todo-backend/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrCategoryNotFound:
		return pkgErrors.NewHTTPError(404, "category not found")
	case task.ErrTitleTooShort:
		return pkgErrors.NewHTTPError(400, "title must be at least 3 characters")
	case task.ErrDeadlineInPast:
		return pkgErrors.NewHTTPError(400, "deadline must be in the future")
	case task.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(400, "invalid task status")
	case task.ErrInvalidPriority:
		return pkgErrors.NewHTTPError(400, "invalid task priority")
	case task.ErrEmptyBulkUpdate:
		return pkgErrors.NewHTTPError(400, "bulk update requires task ids and at least one field")
	case task.ErrTasksNotOwned:
		return pkgErrors.NewHTTPError(400, "Some tasks not found or access denied")
	case task.ErrAlreadyCompleted:
		return pkgErrors.NewHTTPError(409, "task is already completed")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
