package http

import (
	"eisenhower-matrix/internal/pomodoro"
	pkgLog "eisenhower-matrix/pkg/log"
)

type handler struct {
	l     pkgLog.Logger
	timer *pomodoro.Timer
}

// New creates a new HTTP handler for the pomodoro timer.
func New(l pkgLog.Logger, timer *pomodoro.Timer) *handler {
	return &handler{
		l:     l,
		timer: timer,
	}
}
