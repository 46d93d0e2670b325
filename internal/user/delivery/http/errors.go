package http

import (
	"smart-todo-backend/internal/user"
	pkgErrors "smart-todo-backend/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case user.ErrDuplicateEmail:
		return pkgErrors.NewHTTPError(409, "email already registered")
	case user.ErrInvalidCredentials:
		return pkgErrors.NewHTTPError(401, "invalid email or password")
	case user.ErrUserNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
