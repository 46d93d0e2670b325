package ai

import "errors"

var (
	ErrInvalidWorkday   = errors.New("workday start hour must be before end hour")
	ErrInvalidTimezone  = errors.New("invalid timezone")
	ErrUnknownProvider  = errors.New("unknown provider")
	ErrInvalidThreshold = errors.New("confidence threshold must be between 0 and 100")
)
