package wizard

import "errors"

var (
	ErrNotStarted      = errors.New("wizard session not started")
	ErrTitleRequired   = errors.New("title is required")
	ErrProjectRequired = errors.New("a project must be selected")
	ErrAtFirstStep     = errors.New("already at the first step")
	ErrNotAtSummary    = errors.New("wizard has not reached the summary step")
	ErrUnexpectedStep  = errors.New("answer does not match the current step")
)
