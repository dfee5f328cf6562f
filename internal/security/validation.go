package security

import (
	"errors"
	"math/big"
)

var (
	// ErrNilValue is returned when a required value is nil
	ErrNilValue = errors.New("nil value provided")

	// ErrNotPositive is returned when a value must be strictly positive
	ErrNotPositive = errors.New("value must be positive")

	// ErrInvalidRange is returned when a value is outside expected range
	ErrInvalidRange = errors.New("value out of valid range")

	// ErrInvalidName is returned when a name is empty or malformed
	ErrInvalidName = errors.New("invalid name")
)

// ValidatePositive checks that every value is non-nil and > 0
func ValidatePositive(values ...*big.Int) error {
	for _, v := range values {
		if v == nil {
			return ErrNilValue
		}
		if v.Sign() <= 0 {
			return ErrNotPositive
		}
	}

	return nil
}

// ValidateNonNil checks that every value is non-nil
func ValidateNonNil(values ...*big.Int) error {
	for _, v := range values {
		if v == nil {
			return ErrNilValue
		}
	}

	return nil
}

// ValidateScalarInRange checks if scalar is in the closed range [1, max]
func ValidateScalarInRange(value, max *big.Int) error {
	if value == nil || max == nil {
		return ErrNilValue
	}

	if value.Sign() <= 0 {
		return ErrInvalidRange
	}

	if value.Cmp(max) > 0 {
		return ErrInvalidRange
	}

	return nil
}

// SanitizeName validates a display or lookup name.
// Returns error if input is empty, contains null bytes or exceeds max length
func SanitizeName(input string, maxLength int) error {
	if len(input) == 0 || len(input) > maxLength {
		return ErrInvalidName
	}

	for i := 0; i < len(input); i++ {
		if input[i] == 0 {
			return ErrInvalidName
		}
	}

	return nil
}
