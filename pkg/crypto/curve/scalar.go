package curve

import (
	"math/big"
)

// ScalarMult returns k * p using LSB-first double-and-add.
//
// Any k ≡ 0 (mod n) yields Infinity. A negative k multiplies the negated
// point by |k|. The running sum and addend are fresh values at each step;
// the receiver is never modified.
func (p *Point) ScalarMult(k *big.Int) (Element, error) {
	if k == nil {
		return nil, ErrNilScalar
	}

	c := p.curve
	if new(big.Int).Mod(k, c.field.n).Sign() == 0 {
		return NewInfinity(c), nil
	}

	var addend Element = p
	if k.Sign() < 0 {
		addend = p.negate()
	}

	abs := new(big.Int).Abs(k)
	bits := abs.BitLen()

	var result Element = NewInfinity(c)
	for i := 0; i < bits; i++ {
		var err error
		if abs.Bit(i) == 1 {
			if result, err = result.Add(addend); err != nil {
				return nil, err
			}
		}
		// the doubling after the top bit would never be used
		if i == bits-1 {
			break
		}
		if addend, err = addend.Add(addend); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Mul multiplies p by an integer operand. Any Go integer type or *big.Int
// is accepted; group elements and non-integers fail with ErrTypeMismatch.
func (p *Point) Mul(operand any) (Element, error) {
	k, ok := toScalar(operand)
	if !ok {
		return nil, typeMismatch("*", operand, p)
	}
	return p.ScalarMult(k)
}

// ScalarMult returns the identity for every k
func (i *Infinity) ScalarMult(k *big.Int) (Element, error) {
	if k == nil {
		return nil, ErrNilScalar
	}
	return NewInfinity(i.curve), nil
}

// Mul returns the identity for every integer operand
func (i *Infinity) Mul(operand any) (Element, error) {
	if _, ok := toScalar(operand); !ok {
		return nil, typeMismatch("*", operand, i)
	}
	return NewInfinity(i.curve), nil
}

// Mul computes operand * e with the scalar on the left. Multiplication is
// commutative, so this equals e.Mul(operand).
func Mul(operand any, e Element) (Element, error) {
	if e == nil {
		return nil, typeMismatch("*", e, operand)
	}
	return e.Mul(operand)
}

func toScalar(v any) (*big.Int, bool) {
	switch k := v.(type) {
	case int:
		return big.NewInt(int64(k)), true
	case int8:
		return big.NewInt(int64(k)), true
	case int16:
		return big.NewInt(int64(k)), true
	case int32:
		return big.NewInt(int64(k)), true
	case int64:
		return big.NewInt(k), true
	case uint:
		return new(big.Int).SetUint64(uint64(k)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(k)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(k)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(k)), true
	case uint64:
		return new(big.Int).SetUint64(k), true
	case *big.Int:
		if k == nil {
			return nil, false
		}
		return k, true
	default:
		return nil, false
	}
}
