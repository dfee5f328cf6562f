// Package rand provides the randomness source used to draw private scalars
package rand

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Reader is the default cryptographically secure random number generator
var Reader io.Reader = rand.Reader

// Source draws private scalars. Implementations must be uniform over the
// closed range [1, n].
type Source interface {
	Scalar(n *big.Int) (*big.Int, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func(n *big.Int) (*big.Int, error)

// Scalar calls f(n)
func (f SourceFunc) Scalar(n *big.Int) (*big.Int, error) {
	return f(n)
}

type readerSource struct {
	r io.Reader
}

// NewSource returns a Source reading entropy from r. Passing a seeded
// deterministic reader gives reproducible scalars for tests.
func NewSource(r io.Reader) Source {
	return &readerSource{r: r}
}

// Default returns a Source backed by Reader
func Default() Source {
	return NewSource(Reader)
}

// Scalar returns a uniform integer in [1, n]
func (s *readerSource) Scalar(n *big.Int) (*big.Int, error) {
	if n == nil {
		return nil, ErrNilMax
	}
	if n.Sign() <= 0 {
		return nil, ErrInvalidMax
	}

	// [0, n) shifted by one
	value, err := rand.Int(s.r, n)
	if err != nil {
		return nil, err
	}

	return value.Add(value, big.NewInt(1)), nil
}

// GenerateRandomBytes generates n cryptographically secure random bytes
func GenerateRandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	bytes := make([]byte, n)
	if _, err := io.ReadFull(Reader, bytes); err != nil {
		return nil, err
	}

	return bytes, nil
}
