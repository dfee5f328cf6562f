package keygen

import "errors"

var (
	// ErrMissingKeyMaterial is returned when neither a private nor a public key is given
	ErrMissingKeyMaterial = errors.New("private and/or public key must be provided")

	// ErrNilCurve is returned when a nil curve is provided
	ErrNilCurve = errors.New("curve cannot be nil")

	// ErrInfinitePublicKey is returned when the public key is the point at infinity
	ErrInfinitePublicKey = errors.New("public key is the point at infinity")

	// ErrEmptySeed is returned when deriving a key from an empty seed
	ErrEmptySeed = errors.New("seed cannot be empty")

	// ErrInternal is returned when key generation produced an invalid key
	ErrInternal = errors.New("internal key generation failure")
)
