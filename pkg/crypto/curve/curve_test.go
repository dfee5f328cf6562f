package curve

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Caqil/ecgroup/pkg/logger"
)

func bigInts(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}
	return out
}

func newSubGroup(t *testing.T, p, gx, gy, n, h int64) *SubGroup {
	t.Helper()
	v := bigInts(p, gx, gy, n, h)
	sg, err := NewSubGroup(v[0], v[1], v[2], v[3], v[4])
	require.NoError(t, err)
	return sg
}

func newCurve(t *testing.T, a, b int64, field *SubGroup, cfg *Config) *Curve {
	t.Helper()
	if cfg == nil {
		cfg = &Config{Logger: logger.Nop()}
	}
	c, err := NewCurve(big.NewInt(a), big.NewInt(b), field, cfg)
	require.NoError(t, err)
	return c
}

// toyCurve is y^2 = x^3 + 2x + 3 over F_97 with a subgroup of order 5.
// Its nominal generator (1, 2) is not on the curve.
func toyCurve(t *testing.T) *Curve {
	t.Helper()
	return newCurve(t, 2, 3, newSubGroup(t, 97, 1, 2, 5, 1), nil)
}

func bufferLogger() (*logger.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return logger.New(&logger.Config{Level: "warn", Output: buf}), buf
}

func TestNewSubGroup(t *testing.T) {
	sg := newSubGroup(t, 97, 1, 2, 5, 1)

	gx, gy := sg.G()
	assert.Equal(t, int64(97), sg.P().Int64())
	assert.Equal(t, int64(1), gx.Int64())
	assert.Equal(t, int64(2), gy.Int64())
	assert.Equal(t, int64(5), sg.N().Int64())
	assert.Equal(t, int64(1), sg.H().Int64())

	// accessors hand out copies
	sg.P().SetInt64(0)
	assert.Equal(t, int64(97), sg.P().Int64())
}

func TestNewSubGroupInvalid(t *testing.T) {
	one := big.NewInt(1)

	_, err := NewSubGroup(big.NewInt(0), one, one, one, one)
	assert.ErrorIs(t, err, ErrInvalidCurve)

	_, err = NewSubGroup(big.NewInt(97), nil, one, one, one)
	assert.ErrorIs(t, err, ErrInvalidCurve)

	_, err = NewSubGroup(big.NewInt(97), one, one, big.NewInt(-5), one)
	assert.ErrorIs(t, err, ErrInvalidCurve)

	_, err = NewSubGroup(nil, one, one, one, one)
	assert.ErrorIs(t, err, ErrInvalidCurve)
}

func TestSubGroupEqual(t *testing.T) {
	a := newSubGroup(t, 97, 1, 2, 5, 1)
	b := newSubGroup(t, 97, 1, 2, 5, 1)
	c := newSubGroup(t, 97, 1, 2, 7, 1)
	d := newSubGroup(t, 97, 1, 3, 5, 1)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))
}

func TestSubGroupString(t *testing.T) {
	sg := newSubGroup(t, 97, 1, 2, 5, 1)
	assert.Equal(t, "Subgroup => generator (1, 2), order: 5, cofactor: 1 on Field => prime 97", sg.String())
}

func TestCurveIsSingular(t *testing.T) {
	field := newSubGroup(t, 23, 1, 2, 5, 1)

	tests := []struct {
		a, b     int64
		singular bool
	}{
		{0, 0, true},
		{-3, 2, true},
		{-3, 1, false},
		{2, 2, false},
	}

	for _, tt := range tests {
		c := newCurve(t, tt.a, tt.b, field, nil)
		assert.Equal(t, tt.singular, c.IsSingular(), "a=%d b=%d", tt.a, tt.b)
	}
}

func TestCurveIsOnCurve(t *testing.T) {
	c := toyCurve(t)

	onCurve := [][2]int64{{22, 5}, {95, 31}, {29, 43}, {24, 2}, {96, 0}, {3, 6}, {80, 10}}
	for _, xy := range onCurve {
		assert.True(t, c.IsOnCurve(big.NewInt(xy[0]), big.NewInt(xy[1])), "%v", xy)
	}

	assert.False(t, c.IsOnCurve(big.NewInt(94), big.NewInt(31)))
	assert.False(t, c.IsOnCurve(big.NewInt(1), big.NewInt(2)))
	assert.False(t, c.IsOnCurve(nil, big.NewInt(2)))

	// coordinates are compared modulo p
	assert.True(t, c.IsOnCurve(big.NewInt(22+97), big.NewInt(5-97)))
}

func TestNewCurveDefaults(t *testing.T) {
	c, err := NewCurve(big.NewInt(2), big.NewInt(3), newSubGroup(t, 97, 3, 6, 5, 1), nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultName, c.Name())
	assert.False(t, c.Strict())
	assert.Equal(t, int64(2), c.A().Int64())
	assert.Equal(t, int64(3), c.B().Int64())
	assert.Equal(t, int64(5), c.Order().Int64())

	g := c.Generator()
	assert.Equal(t, int64(3), g.X().Int64())
	assert.Equal(t, int64(6), g.Y().Int64())
	assert.True(t, g.OnCurve())
	assert.Same(t, c, g.Curve())
}

func TestNewCurveInvalid(t *testing.T) {
	field := newSubGroup(t, 97, 3, 6, 5, 1)

	_, err := NewCurve(big.NewInt(2), big.NewInt(3), nil, nil)
	assert.ErrorIs(t, err, ErrNilSubGroup)

	_, err = NewCurve(nil, big.NewInt(3), field, nil)
	assert.ErrorIs(t, err, ErrInvalidCurve)

	_, err = NewCurve(big.NewInt(2), big.NewInt(3), field, &Config{Name: "bad\x00name"})
	assert.ErrorIs(t, err, ErrInvalidCurve)
}

func TestNewCurveOffCurveGenerator(t *testing.T) {
	log, buf := bufferLogger()

	c, err := NewCurve(big.NewInt(2), big.NewInt(3), newSubGroup(t, 97, 1, 2, 5, 1), &Config{Logger: log})
	require.NoError(t, err)
	assert.False(t, c.Generator().OnCurve())
	assert.Contains(t, buf.String(), "point not on curve")

	_, err = NewCurve(big.NewInt(2), big.NewInt(3), newSubGroup(t, 97, 1, 2, 5, 1), &Config{Strict: true, Logger: logger.Nop()})
	assert.ErrorIs(t, err, ErrPointNotOnCurve)
}

func TestCurveEqual(t *testing.T) {
	field := newSubGroup(t, 97, 1, 2, 5, 1)

	c1 := newCurve(t, 2, 3, field, &Config{Name: "first", Logger: logger.Nop()})
	c2 := newCurve(t, 2, 3, newSubGroup(t, 97, 1, 2, 5, 1), &Config{Name: "second", Logger: logger.Nop()})
	c3 := newCurve(t, 2, 4, field, nil)
	c4 := newCurve(t, 2, 3, newSubGroup(t, 97, 1, 2, 7, 1), nil)

	assert.True(t, c1.Equal(c1))
	assert.True(t, c1.Equal(c2), "names must not take part in equality")
	assert.False(t, c1.Equal(c3))
	assert.False(t, c1.Equal(c4))
	assert.False(t, c1.Equal(nil))
}

func TestCurveString(t *testing.T) {
	c := newCurve(t, -3, 1, newSubGroup(t, 23, 1, 2, 5, 1), &Config{Name: "toy", Logger: logger.Nop()})
	assert.Equal(t, `"toy" => y^2 = x^3 + -3x + 1 (mod 23)`, c.String())

	var nilCurve *Curve
	assert.Equal(t, "<nil curve>", nilCurve.String())
}

func TestCurveUsesGlobalLoggerByDefault(t *testing.T) {
	prev := logger.Global()
	defer logger.SetGlobalLogger(prev)

	log, buf := bufferLogger()
	logger.SetGlobalLogger(log)

	c := newCurve(t, 2, 3, newSubGroup(t, 97, 3, 6, 5, 1), &Config{Name: "toy"})
	_, err := NewPoint(c, big.NewInt(94), big.NewInt(31))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "point not on curve")
	assert.Contains(t, buf.String(), `"curve":"toy"`)
	assert.Contains(t, buf.String(), `"x":"94"`)
}
