package http

import (
	"eisenhower-matrix/internal/contacts"
	pkgLog "eisenhower-matrix/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc contacts.UseCase
}

// New creates a new HTTP handler for the contacts domain.
func New(l pkgLog.Logger, uc contacts.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
