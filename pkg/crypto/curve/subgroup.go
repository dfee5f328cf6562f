package curve

import (
	"fmt"
	"math/big"

	"github.com/Caqil/ecgroup/internal/security"
)

// SubGroup describes a cyclic subgroup of a curve's point group: the field
// prime, the generator coordinates, the order of the generator and the
// cofactor. Primality of p and the order of g are assumed, not verified.
type SubGroup struct {
	p      *big.Int
	gx, gy *big.Int
	n      *big.Int
	h      *big.Int
}

// NewSubGroup creates a subgroup description. p, n and h must be positive.
func NewSubGroup(p, gx, gy, n, h *big.Int) (*SubGroup, error) {
	if err := security.ValidatePositive(p, n, h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCurve, err)
	}
	if err := security.ValidateNonNil(gx, gy); err != nil {
		return nil, fmt.Errorf("%w: generator: %v", ErrInvalidCurve, err)
	}

	return &SubGroup{
		p:  new(big.Int).Set(p),
		gx: new(big.Int).Set(gx),
		gy: new(big.Int).Set(gy),
		n:  new(big.Int).Set(n),
		h:  new(big.Int).Set(h),
	}, nil
}

// P returns the field prime
func (s *SubGroup) P() *big.Int {
	return new(big.Int).Set(s.p)
}

// G returns the generator coordinates
func (s *SubGroup) G() (x, y *big.Int) {
	return new(big.Int).Set(s.gx), new(big.Int).Set(s.gy)
}

// N returns the subgroup order
func (s *SubGroup) N() *big.Int {
	return new(big.Int).Set(s.n)
}

// H returns the cofactor
func (s *SubGroup) H() *big.Int {
	return new(big.Int).Set(s.h)
}

// Equal reports whether both subgroups have identical parameters
func (s *SubGroup) Equal(other *SubGroup) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.p.Cmp(other.p) == 0 &&
		s.gx.Cmp(other.gx) == 0 &&
		s.gy.Cmp(other.gy) == 0 &&
		s.n.Cmp(other.n) == 0 &&
		s.h.Cmp(other.h) == 0
}

func (s *SubGroup) String() string {
	return fmt.Sprintf("Subgroup => generator (%s, %s), order: %s, cofactor: %s on Field => prime %s",
		s.gx, s.gy, s.n, s.h, s.p)
}
