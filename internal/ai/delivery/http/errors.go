package http

import (
	"smart-todo-backend/internal/ai"
	pkgErrors "smart-todo-backend/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case ai.ErrInvalidWorkday:
		return pkgErrors.NewHTTPError(400, "workday start hour must be before end hour")
	case ai.ErrInvalidTimezone:
		return pkgErrors.NewHTTPError(400, "invalid timezone")
	case ai.ErrUnknownProvider:
		return pkgErrors.NewHTTPError(400, "unknown provider")
	case ai.ErrInvalidThreshold:
		return pkgErrors.NewHTTPError(400, "confidence threshold must be between 0 and 100")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
