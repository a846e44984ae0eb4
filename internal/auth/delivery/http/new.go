package http

import (
	"eisenhower-matrix/internal/auth"
	pkgLog "eisenhower-matrix/pkg/log"
)

type handler struct {
	l   pkgLog.Logger
	svc auth.Service
}

// New creates a new HTTP handler for the auth endpoints.
func New(l pkgLog.Logger, svc auth.Service) *handler {
	return &handler{
		l:   l,
		svc: svc,
	}
}
