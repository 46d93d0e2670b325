package http

import (
	"smart-todo-backend/internal/contextentry"
	pkgErrors "smart-todo-backend/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case contextentry.ErrEntryNotFound:
		return pkgErrors.NewHTTPError(404, "context entry not found")
	case contextentry.ErrInsightNotFound:
		return pkgErrors.NewHTTPError(404, "insight not found")
	case contextentry.ErrEmptyContent:
		return pkgErrors.NewHTTPError(400, "content must not be empty")
	case contextentry.ErrInvalidSource:
		return pkgErrors.NewHTTPError(400, "invalid source type")
	case contextentry.ErrCalendarNotEnabled:
		return pkgErrors.NewHTTPError(503, "google calendar import is not configured")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
