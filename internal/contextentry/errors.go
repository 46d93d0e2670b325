package contextentry

import "errors"

var (
	ErrEntryNotFound      = errors.New("context entry not found")
	ErrInsightNotFound    = errors.New("insight not found")
	ErrInvalidSource      = errors.New("invalid source type")
	ErrEmptyContent       = errors.New("content must not be empty")
	ErrCalendarNotEnabled = errors.New("google calendar import is not configured")
)
