package hash

import "errors"

var (
	// ErrInvalidLength is returned when an invalid length is specified
	ErrInvalidLength = errors.New("length must be positive")

	// ErrInvalidModulus is returned when a reduction modulus is not > 1
	ErrInvalidModulus = errors.New("modulus must be greater than one")
)
