package ecdh

import "errors"

var (
	// ErrNilKeypair is returned when a nil keypair is provided
	ErrNilKeypair = errors.New("keypair cannot be nil")

	// ErrMissingKeyMaterial is returned when neither side holds a private key
	ErrMissingKeyMaterial = errors.New("neither keypair holds a private key")

	// ErrInfiniteSecret is returned when the shared secret is the point at infinity
	ErrInfiniteSecret = errors.New("shared secret is the point at infinity")
)
