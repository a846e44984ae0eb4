package http

import (
	"errors"

	"eisenhower-matrix/internal/contacts"
	pkgErrors "eisenhower-matrix/pkg/errors"
)

var errIDRequired = pkgErrors.NewHTTPError(400, "id is required")

// mapError translates contact errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, contacts.ErrNameRequired),
		errors.Is(err, contacts.ErrPhoneRequired):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, contacts.ErrContactNotFound):
		return pkgErrors.NewHTTPError(404, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "contact store failed")
	}
}
