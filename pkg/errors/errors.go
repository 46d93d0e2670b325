package errors

import "net/http"

// HTTPError is an error carrying the HTTP status it should be served with.
// Delivery layers translate domain errors into HTTPError values; everything
// else is treated as a 500.
type HTTPError struct {
	Status  int
	Message string
	Errors  any
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// WithErrors attaches field-level details (e.g. validation errors).
func (e *HTTPError) WithErrors(errs any) *HTTPError {
	e.Errors = errs
	return e
}

// Common HTTP errors shared by delivery layers.
var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrForbidden           = NewHTTPError(http.StatusForbidden, "forbidden")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
