package http

import (
	"smart-todo-backend/internal/category"
	pkgErrors "smart-todo-backend/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case category.ErrCategoryNotFound:
		return pkgErrors.NewHTTPError(404, "category not found")
	case category.ErrDuplicateName:
		return pkgErrors.NewHTTPError(409, "category name already exists")
	case category.ErrCategoryInUse:
		return pkgErrors.NewHTTPError(409, "category still has tasks assigned")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
