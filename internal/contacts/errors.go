package contacts

import "errors"

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrNameRequired    = errors.New("contact name is required")
	ErrPhoneRequired   = errors.New("contact phone is required")
)
