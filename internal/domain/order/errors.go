package order

import "errors"

var (
	ErrMissingField      = errors.New("required field is missing")
	ErrCustomerNotFound  = errors.New("invalid customer ID")
	ErrEmptyProductList  = errors.New("order needs at least one product")
	ErrInvalidProductIDs = errors.New("some product IDs are invalid")
)
