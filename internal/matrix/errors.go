package matrix

import "errors"

// Domain-specific errors for the matrix package. Validation errors abort the
// operation before any state mutation or network call.
var (
	ErrEmptyTitle         = errors.New("task title is empty")
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidQuadrant    = errors.New("invalid quadrant")
	ErrNotInDelegate      = errors.New("task is not in the delegate quadrant")
	ErrProjectRequired    = errors.New("project is required")
	ErrDurationOutOfRange = errors.New("duration must be between 0 and 480 minutes")
	ErrNoDurationPending  = errors.New("no duration capture in progress")
	ErrLinkNameRequired   = errors.New("link name is required")
	ErrMessageRequired    = errors.New("message is required for WhatsApp links")
	ErrURLRequired        = errors.New("url is required")
	ErrLinkNotFound       = errors.New("custom link not found")
	ErrNoDayLoaded        = errors.New("no day loaded")
)
