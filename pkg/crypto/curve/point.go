package curve

import (
	"fmt"
	"math/big"

	"github.com/Caqil/ecgroup/internal/math"
)

// Element is a member of a curve's point group: either a finite *Point or
// the identity *Infinity. The set of implementations is closed.
type Element interface {
	// Curve returns the curve the element belongs to
	Curve() *Curve

	// IsInfinity reports whether the element is the identity
	IsInfinity() bool

	// Equal reports whether both elements are the same group element
	Equal(other Element) bool

	// Add applies the group law
	Add(other Element) (Element, error)

	// Sub adds the negation of other (see Infinity.Sub for the identity case)
	Sub(other Element) (Element, error)

	// Neg returns the additive inverse
	Neg() Element

	// ScalarMult computes k * element by double-and-add
	ScalarMult(k *big.Int) (Element, error)

	// Mul multiplies by an integer operand of any Go integer kind
	Mul(operand any) (Element, error)

	String() string

	element()
}

// Point is a finite point in affine coordinates. Points are never mutated;
// every operation returns a new element.
type Point struct {
	x, y    *big.Int
	curve   *Curve
	onCurve bool
}

// NewPoint creates the point (x, y) on c.
//
// A point that does not satisfy the curve equation is reported as a warning
// and returned with OnCurve() == false. On strict curves it is rejected with
// ErrPointNotOnCurve instead.
func NewPoint(c *Curve, x, y *big.Int) (*Point, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	if x == nil || y == nil {
		return nil, ErrNilCoordinate
	}

	p := c.point(x, y)
	if !p.onCurve && c.strict {
		return nil, fmt.Errorf("%w: (%s, %s) on %s", ErrPointNotOnCurve, x, y, c)
	}

	return p, nil
}

// point builds a point without strict enforcement
func (c *Curve) point(x, y *big.Int) *Point {
	p := &Point{
		x:       new(big.Int).Set(x),
		y:       new(big.Int).Set(y),
		curve:   c,
		onCurve: true,
	}
	if !c.IsOnCurve(x, y) {
		c.warnOffCurve(x, y)
		p.onCurve = false
	}
	return p
}

func (p *Point) element() {}

// X returns the affine x coordinate
func (p *Point) X() *big.Int {
	return new(big.Int).Set(p.x)
}

// Y returns the affine y coordinate
func (p *Point) Y() *big.Int {
	return new(big.Int).Set(p.y)
}

// Curve returns the curve the point was built against
func (p *Point) Curve() *Curve {
	return p.curve
}

// OnCurve reports whether the point satisfied the curve equation when it
// was built
func (p *Point) OnCurve() bool {
	return p.onCurve
}

// IsInfinity is always false for a finite point
func (p *Point) IsInfinity() bool {
	return false
}

// Validate upgrades the soft on-curve check to an error
func (p *Point) Validate() error {
	if !p.onCurve {
		return fmt.Errorf("%w: (%s, %s) on %s", ErrPointNotOnCurve, p.x, p.y, p.curve)
	}
	return nil
}

// Equal reports whether other is a finite point with the same coordinates
// on an equal curve
func (p *Point) Equal(other Element) bool {
	o, ok := other.(*Point)
	if !ok || p == nil || o == nil {
		return false
	}
	return p.x.Cmp(o.x) == 0 && p.y.Cmp(o.y) == 0 && p.curve.Equal(o.curve)
}

// Add returns p + other.
//
// Adding the identity returns p unchanged. Points with equal x and different
// y are mutual inverses and sum to Infinity. Points on different curves fail
// with ErrCurveMismatch, and a slope whose denominator has no inverse (a
// point with y = 0 being doubled) fails with ErrNoInverse.
func (p *Point) Add(other Element) (Element, error) {
	switch o := other.(type) {
	case *Infinity:
		if o == nil {
			break
		}
		return p, nil
	case *Point:
		if o == nil {
			break
		}
		return p.add(o)
	}
	return nil, typeMismatch("+", other, p)
}

func (p *Point) add(q *Point) (Element, error) {
	if !p.curve.Equal(q.curve) {
		return nil, ErrCurveMismatch
	}
	if p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) != 0 {
		return NewInfinity(p.curve), nil
	}

	prime := p.curve.field.p

	m, err := p.slope(q)
	if err != nil {
		return nil, err
	}

	// x_r = m^2 - x1 - x2
	xr := new(big.Int).Mul(m, m)
	xr.Sub(xr, p.x)
	xr.Sub(xr, q.x)
	xr.Mod(xr, prime)

	// y_r = -(y1 + m(x_r - x1))
	yr := new(big.Int).Sub(xr, p.x)
	yr.Mul(yr, m)
	yr.Add(yr, p.y)
	yr.Neg(yr)
	yr.Mod(yr, prime)

	r, err := NewPoint(p.curve, xr, yr)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// slope returns the chord slope through p and q, or the tangent slope at p
// when both share x
func (p *Point) slope(q *Point) (*big.Int, error) {
	prime := p.curve.field.p

	var num, den *big.Int
	if p.x.Cmp(q.x) == 0 {
		// (3x^2 + a) / 2y
		num = new(big.Int).Mul(p.x, p.x)
		num.Mul(num, big.NewInt(3))
		num.Add(num, p.curve.a)
		den = new(big.Int).Lsh(p.y, 1)
	} else {
		// (y1 - y2) / (x1 - x2)
		num = new(big.Int).Sub(p.y, q.y)
		den = new(big.Int).Sub(p.x, q.x)
	}

	inv, err := math.ModInverse(den, prime)
	if err != nil {
		return nil, fmt.Errorf("slope denominator %s mod %s: %w", den, prime, err)
	}

	m := num.Mul(num, inv)
	return m.Mod(m, prime), nil
}

// Sub returns p + (-other). Subtracting the identity returns p.
func (p *Point) Sub(other Element) (Element, error) {
	switch o := other.(type) {
	case *Infinity:
		if o == nil {
			break
		}
		return p.Add(o)
	case *Point:
		if o == nil {
			break
		}
		return p.Add(o.negate())
	}
	return nil, typeMismatch("-", other, p)
}

// Neg returns (x, -y mod p) on the same curve
func (p *Point) Neg() Element {
	return p.negate()
}

func (p *Point) negate() *Point {
	y := new(big.Int).Neg(p.y)
	y.Mod(y, p.curve.field.p)
	return p.curve.point(p.x, y)
}

func (p *Point) String() string {
	state := "on"
	if !p.onCurve {
		state = "off"
	}
	return fmt.Sprintf("(%s, %s) %s %s", p.x, p.y, state, p.curve)
}

// Infinity is the identity element of a curve's group. It has no
// coordinates.
type Infinity struct {
	curve *Curve
}

// NewInfinity returns the identity element of c
func NewInfinity(c *Curve) *Infinity {
	return &Infinity{curve: c}
}

func (i *Infinity) element() {}

// Curve returns the curve the identity belongs to
func (i *Infinity) Curve() *Curve {
	return i.curve
}

// IsInfinity is always true
func (i *Infinity) IsInfinity() bool {
	return true
}

// Equal reports whether other is the identity of an equal curve
func (i *Infinity) Equal(other Element) bool {
	o, ok := other.(*Infinity)
	if !ok || i == nil || o == nil {
		return false
	}
	return i.curve.Equal(o.curve)
}

// Add returns other when it is a finite point and a fresh identity when it
// is the identity
func (i *Infinity) Add(other Element) (Element, error) {
	switch o := other.(type) {
	case *Infinity:
		if o == nil {
			break
		}
		return NewInfinity(i.curve), nil
	case *Point:
		if o == nil {
			break
		}
		return o, nil
	}
	return nil, typeMismatch("+", other, i)
}

// Sub follows the addition rule: Infinity - Q returns Q itself, not -Q.
func (i *Infinity) Sub(other Element) (Element, error) {
	switch o := other.(type) {
	case *Infinity:
		if o == nil {
			break
		}
		return NewInfinity(i.curve), nil
	case *Point:
		if o == nil {
			break
		}
		return o, nil
	}
	return nil, typeMismatch("-", other, i)
}

// Neg returns the identity
func (i *Infinity) Neg() Element {
	return i
}

func (i *Infinity) String() string {
	return fmt.Sprintf("Infinity on %s", i.curve)
}

// kind names an operand the way error messages show it
func kind(v any) string {
	switch o := v.(type) {
	case nil:
		return "nil"
	case *Point:
		if o == nil {
			return "nil"
		}
		return "Point"
	case *Infinity:
		if o == nil {
			return "nil"
		}
		return "Infinity"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func typeMismatch(op string, operand, receiver any) error {
	return fmt.Errorf("%w(s) for %s: '%s' and '%s'", ErrTypeMismatch, op, kind(operand), kind(receiver))
}
