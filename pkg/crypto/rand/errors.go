package rand

import "errors"

var (
	// ErrInvalidLength is returned when requested length is invalid
	ErrInvalidLength = errors.New("invalid length: must be positive")

	// ErrNilMax is returned when the upper bound is nil
	ErrNilMax = errors.New("max cannot be nil")

	// ErrInvalidMax is returned when the upper bound is not positive
	ErrInvalidMax = errors.New("max must be positive")
)
