package math

import "errors"

var (
	// ErrInvalidModulus is returned when modulus is invalid
	ErrInvalidModulus = errors.New("modulus must be positive")

	// ErrNilValue is returned when a nil operand is provided
	ErrNilValue = errors.New("value cannot be nil")

	// ErrNoInverse is returned when the value shares a factor with the modulus
	ErrNoInverse = errors.New("modular inverse does not exist")
)
