package http

import (
	"eisenhower-matrix/internal/matrix"
	pkgLog "eisenhower-matrix/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc matrix.UseCase
}

// New creates a new HTTP handler for the matrix domain.
func New(l pkgLog.Logger, uc matrix.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
