package http

import (
	"errors"

	"eisenhower-matrix/internal/matrix"
	"eisenhower-matrix/internal/wizard"
	pkgErrors "eisenhower-matrix/pkg/errors"
)

// mapError translates wizard errors into HTTP errors. Create delegates to the
// matrix use case, so its errors surface here too.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, wizard.ErrTitleRequired),
		errors.Is(err, wizard.ErrProjectRequired),
		errors.Is(err, wizard.ErrUnexpectedStep):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, wizard.ErrNotStarted),
		errors.Is(err, wizard.ErrAtFirstStep),
		errors.Is(err, wizard.ErrNotAtSummary),
		errors.Is(err, matrix.ErrNoDayLoaded):
		return pkgErrors.NewHTTPError(409, err.Error())
	case errors.Is(err, matrix.ErrEmptyTitle),
		errors.Is(err, matrix.ErrInvalidQuadrant):
		return pkgErrors.NewHTTPError(400, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "persistence call failed")
	}
}
