package product

import "errors"

var (
	ErrMissingField  = errors.New("required field is missing")
	ErrInvalidPrice  = errors.New("price must be greater than zero")
	ErrInvalidStock  = errors.New("stock cannot be negative")
	ErrDuplicateName = errors.New("product already exists")
)
