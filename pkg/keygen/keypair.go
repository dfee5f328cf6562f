// Package keygen derives key pairs on short Weierstrass curves
package keygen

import (
	"fmt"
	"math/big"

	"github.com/Caqil/ecgroup/internal/security"
	"github.com/Caqil/ecgroup/pkg/crypto/curve"
	"github.com/Caqil/ecgroup/pkg/crypto/hash"
	"github.com/Caqil/ecgroup/pkg/crypto/rand"
	"github.com/Caqil/ecgroup/pkg/logger"
)

// Keypair holds a private scalar and/or a public point on a curve.
// A keypair without a private scalar can only take part in encryption.
type Keypair struct {
	curve *curve.Curve
	priv  *big.Int
	pub   *curve.Point
}

// NewKeypair creates a keypair. When only priv is given the public key is
// derived as priv*G. A supplied pub is used as is.
func NewKeypair(c *curve.Curve, priv *big.Int, pub *curve.Point) (*Keypair, error) {
	if priv == nil && pub == nil {
		return nil, ErrMissingKeyMaterial
	}
	if c == nil {
		return nil, ErrNilCurve
	}

	kp := &Keypair{curve: c}
	if priv != nil {
		kp.priv = new(big.Int).Set(priv)
	}

	if pub != nil {
		kp.pub = pub
		return kp, nil
	}

	derived, err := c.Generator().ScalarMult(priv)
	if err != nil {
		return nil, fmt.Errorf("derive public key: %w", err)
	}

	point, ok := derived.(*curve.Point)
	if !ok {
		return nil, ErrInfinitePublicKey
	}
	kp.pub = point

	return kp, nil
}

// Generate draws a private scalar in [1, n] from src and derives the
// public key. A nil src uses the crypto/rand backed default.
func Generate(c *curve.Curve, src rand.Source) (*Keypair, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	if src == nil {
		src = rand.Default()
	}

	n := c.Order()
	priv, err := src.Scalar(n)
	if err != nil {
		return nil, fmt.Errorf("draw private key: %w", err)
	}

	if err := security.ValidateScalarInRange(priv, n); err != nil {
		return nil, fmt.Errorf("private key: %w", err)
	}

	kp, err := NewKeypair(c, priv, nil)
	if err != nil {
		// priv == n is accepted by the range check but yields infinity
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return kp, nil
}

// FromSeed deterministically derives a keypair from seed. The private
// scalar is an HKDF-SHA256 expansion of the seed reduced into [1, n).
func FromSeed(c *curve.Curve, seed []byte) (*Keypair, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}

	priv, err := hash.HashToScalar(seed, c.Order())
	if err != nil {
		return nil, fmt.Errorf("derive private key: %w", err)
	}

	return NewKeypair(c, priv, nil)
}

// Curve returns the curve the keypair lives on
func (k *Keypair) Curve() *curve.Curve {
	return k.curve
}

// Private returns a copy of the private scalar, or nil for a public-only keypair
func (k *Keypair) Private() *big.Int {
	if k.priv == nil {
		return nil
	}
	return new(big.Int).Set(k.priv)
}

// Public returns the public point
func (k *Keypair) Public() *curve.Point {
	return k.pub
}

// CanSign reports whether the keypair holds a private scalar
func (k *Keypair) CanSign() bool {
	return k.priv != nil
}

// CanEncrypt is always true; every keypair has a public key
func (k *Keypair) CanEncrypt() bool {
	return true
}

// String renders the public key and capabilities. The private scalar is redacted.
func (k *Keypair) String() string {
	priv := "<none>"
	if k.priv != nil {
		priv = logger.RedactSecret(k.priv.Text(16))
	}
	return fmt.Sprintf("Keypair{pub: %s, priv: %s, sign: %t, encrypt: %t}",
		k.pub, priv, k.CanSign(), k.CanEncrypt())
}
