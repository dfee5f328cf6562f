// Package math provides the modular arithmetic the curve group law is built on
package math

import (
	"math/big"
)

// EGCD runs the extended Euclidean algorithm on a and b.
// It returns g = gcd(a, b) together with Bézout coefficients x, y
// such that a*x + b*y = g. Both inputs are expected to be non-negative.
func EGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := new(big.Int).Div(oldR, r)

		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldT, t = t, new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
	}

	return oldR, oldS, oldT
}

// ModInverse returns x such that a*x ≡ 1 (mod p).
//
// Negative values are accepted: the inverse of -a is computed and
// reflected as p - inverse. ErrNoInverse is returned when gcd(a mod p, p) != 1,
// which for a prime p only happens when a ≡ 0 (mod p).
func ModInverse(a, p *big.Int) (*big.Int, error) {
	if a == nil || p == nil {
		return nil, ErrNilValue
	}
	if p.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}

	if a.Sign() < 0 {
		inv, err := ModInverse(new(big.Int).Neg(a), p)
		if err != nil {
			return nil, err
		}
		return inv.Sub(p, inv), nil
	}

	g, x, _ := EGCD(new(big.Int).Mod(a, p), p)
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, ErrNoInverse
	}

	return x.Mod(x, p), nil
}
