package customer

import "errors"

var (
	ErrMissingField   = errors.New("required field is missing")
	ErrInvalidEmail   = errors.New("email format is invalid")
	ErrInvalidPhone   = errors.New("phone format is invalid")
	ErrDuplicateEmail = errors.New("email already exists")
)
