package http

import (
	"eisenhower-matrix/internal/wizard"
	pkgLog "eisenhower-matrix/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc wizard.UseCase
}

// New creates a new HTTP handler for the wizard domain.
func New(l pkgLog.Logger, uc wizard.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
