package http

import (
	"errors"

	"eisenhower-matrix/internal/matrix"
	pkgErrors "eisenhower-matrix/pkg/errors"
)

var (
	errInvalidDate      = pkgErrors.NewHTTPError(400, "date must be YYYY-MM-DD")
	errQuadrantRequired = pkgErrors.NewHTTPError(400, "quadrant is required")
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Unknown errors fall through as 500: persistence failures are not the
// client's fault.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, matrix.ErrEmptyTitle),
		errors.Is(err, matrix.ErrInvalidQuadrant),
		errors.Is(err, matrix.ErrProjectRequired),
		errors.Is(err, matrix.ErrDurationOutOfRange),
		errors.Is(err, matrix.ErrLinkNameRequired),
		errors.Is(err, matrix.ErrMessageRequired),
		errors.Is(err, matrix.ErrURLRequired):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, matrix.ErrTaskNotFound),
		errors.Is(err, matrix.ErrLinkNotFound):
		return pkgErrors.NewHTTPError(404, err.Error())
	case errors.Is(err, matrix.ErrNotInDelegate),
		errors.Is(err, matrix.ErrNoDurationPending),
		errors.Is(err, matrix.ErrNoDayLoaded):
		return pkgErrors.NewHTTPError(409, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "persistence call failed")
	}
}
