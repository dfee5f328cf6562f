package curve

import (
	"errors"

	"github.com/Caqil/ecgroup/internal/math"
)

var (
	// ErrUnknownCurve is returned when a registry lookup misses
	ErrUnknownCurve = errors.New("unknown curve name")

	// ErrPointNotOnCurve is returned for off-curve points on strict curves
	ErrPointNotOnCurve = errors.New("point not on curve")

	// ErrCurveMismatch is returned when adding points of different curves
	ErrCurveMismatch = errors.New("cannot add points belonging to different curves")

	// ErrTypeMismatch is returned when an operand has an unsupported type
	ErrTypeMismatch = errors.New("unsupported operand type")

	// ErrNoInverse is returned when a slope denominator has no inverse modulo p
	ErrNoInverse = math.ErrNoInverse

	// ErrNilCurve is returned when a nil curve is provided
	ErrNilCurve = errors.New("curve cannot be nil")

	// ErrNilSubGroup is returned when a curve is built without a subgroup
	ErrNilSubGroup = errors.New("subgroup cannot be nil")

	// ErrNilCoordinate is returned when a point coordinate is nil
	ErrNilCoordinate = errors.New("point coordinate cannot be nil")

	// ErrNilScalar is returned when a nil scalar is provided
	ErrNilScalar = errors.New("scalar cannot be nil")

	// ErrInvalidCurve is returned when curve parameters are invalid
	ErrInvalidCurve = errors.New("invalid curve parameters")
)
