// Package curve implements affine group-law arithmetic on short Weierstrass
// curves y^2 = x^3 + ax + b over a prime field.
//
// Arithmetic is exact and variable time. Points that do not satisfy the
// curve equation are still constructible: the condition is reported through
// the curve's logger and recorded in Point.OnCurve, and only curves built
// with Config.Strict turn it into ErrPointNotOnCurve.
package curve

import (
	"fmt"
	"math/big"

	"github.com/Caqil/ecgroup/internal/security"
	"github.com/Caqil/ecgroup/pkg/logger"
)

// DefaultName is used for curves built without a name
const DefaultName = "undefined"

const maxNameLength = 128

// Config holds per-curve options
type Config struct {
	// Name is a display label (default: "undefined")
	Name string

	// Strict makes off-curve point construction fail with ErrPointNotOnCurve
	// instead of logging a warning
	Strict bool

	// Logger receives off-curve diagnostics (default: the global logger)
	Logger *logger.Logger
}

// DefaultConfig returns default curve configuration
func DefaultConfig() *Config {
	return &Config{
		Name: DefaultName,
	}
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if c.Name == "" {
		return nil
	}
	if err := security.SanitizeName(c.Name, maxNameLength); err != nil {
		return fmt.Errorf("%w: name: %v", ErrInvalidCurve, err)
	}
	return nil
}

// Curve is a short Weierstrass curve bound to a subgroup. It is immutable
// once built and safe for concurrent use.
type Curve struct {
	a, b   *big.Int
	field  *SubGroup
	name   string
	strict bool
	log    *logger.Logger
	g      *Point
}

// NewCurve builds the curve y^2 = x^3 + ax + b over field and derives its
// generator point. The curve is not required to be non-singular; see
// IsSingular.
func NewCurve(a, b *big.Int, field *SubGroup, cfg *Config) (*Curve, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if field == nil {
		return nil, ErrNilSubGroup
	}
	if err := security.ValidateNonNil(a, b); err != nil {
		return nil, fmt.Errorf("%w: coefficients: %v", ErrInvalidCurve, err)
	}

	name := cfg.Name
	if name == "" {
		name = DefaultName
	}

	c := &Curve{
		a:      new(big.Int).Set(a),
		b:      new(big.Int).Set(b),
		field:  field,
		name:   name,
		strict: cfg.Strict,
	}
	if cfg.Logger != nil {
		c.log = cfg.Logger.With().Str("component", "curve").Logger()
	}

	g, err := NewPoint(c, field.gx, field.gy)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	c.g = g

	return c, nil
}

// A returns the linear coefficient
func (c *Curve) A() *big.Int {
	return new(big.Int).Set(c.a)
}

// B returns the constant coefficient
func (c *Curve) B() *big.Int {
	return new(big.Int).Set(c.b)
}

// Field returns the subgroup the curve is defined over
func (c *Curve) Field() *SubGroup {
	return c.field
}

// Name returns the display label
func (c *Curve) Name() string {
	return c.name
}

// Strict reports whether off-curve points are rejected
func (c *Curve) Strict() bool {
	return c.strict
}

// Generator returns the generator point
func (c *Curve) Generator() *Point {
	return c.g
}

// Order returns the order of the generator
func (c *Curve) Order() *big.Int {
	return c.field.N()
}

// Infinity returns the identity element of the curve's group
func (c *Curve) Infinity() *Infinity {
	return NewInfinity(c)
}

// IsSingular reports whether 4a^3 + 27b^2 ≡ 0 (mod p)
func (c *Curve) IsSingular() bool {
	a3 := new(big.Int).Exp(c.a, big.NewInt(3), nil)
	a3.Mul(a3, big.NewInt(4))

	b2 := new(big.Int).Mul(c.b, c.b)
	b2.Mul(b2, big.NewInt(27))

	d := a3.Add(a3, b2)
	return d.Mod(d, c.field.p).Sign() == 0
}

// IsOnCurve reports whether y^2 - x^3 - ax - b ≡ 0 (mod p).
// Coordinates are not range-checked.
func (c *Curve) IsOnCurve(x, y *big.Int) bool {
	if x == nil || y == nil {
		return false
	}

	lhs := new(big.Int).Mul(y, y)

	x3 := new(big.Int).Exp(x, big.NewInt(3), nil)
	ax := new(big.Int).Mul(c.a, x)

	lhs.Sub(lhs, x3)
	lhs.Sub(lhs, ax)
	lhs.Sub(lhs, c.b)

	return lhs.Mod(lhs, c.field.p).Sign() == 0
}

// Equal compares the coefficients and the subgroup. Name and
// configuration do not take part in equality.
func (c *Curve) Equal(other *Curve) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c == other {
		return true
	}
	return c.a.Cmp(other.a) == 0 &&
		c.b.Cmp(other.b) == 0 &&
		c.field.Equal(other.field)
}

func (c *Curve) String() string {
	if c == nil {
		return "<nil curve>"
	}
	return fmt.Sprintf("%q => y^2 = x^3 + %sx + %s (mod %s)", c.name, c.a, c.b, c.field.p)
}

func (c *Curve) diagnostics() *logger.Logger {
	if c.log != nil {
		return c.log
	}
	return logger.Global()
}

func (c *Curve) warnOffCurve(x, y *big.Int) {
	c.diagnostics().WarnEvent().
		Str("curve", c.name).
		Str("x", x.String()).
		Str("y", y.String()).
		Msg("point not on curve")
}
