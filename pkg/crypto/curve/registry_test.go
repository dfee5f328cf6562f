package curve

import (
	"crypto/elliptic"
	"sync"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurveUnknownName(t *testing.T) {
	_, err := GetCurve("abcd")
	assert.ErrorIs(t, err, ErrUnknownCurve)
	assert.Contains(t, err.Error(), `"abcd"`)

	_, err = LookupParams("brainpoolP999r1")
	assert.ErrorIs(t, err, ErrUnknownCurve)

	_, err = NewNamedCurve(CurveType(99))
	assert.ErrorIs(t, err, ErrUnknownCurve)
}

func TestGetCurveBuildsRegisteredCurve(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			c, err := GetCurve(name)
			require.NoError(t, err)

			params, err := LookupParams(name)
			require.NoError(t, err)

			assert.Equal(t, name, c.Name())
			assert.Zero(t, params.N.Cmp(c.Field().N()))
			assert.Zero(t, params.P.Cmp(c.Field().P()))
			assert.True(t, c.Generator().OnCurve())
			assert.False(t, c.IsSingular())
		})
	}
}

func TestSecp256k1Params(t *testing.T) {
	c, err := NewNamedCurve(Secp256k1)
	require.NoError(t, err)

	std := btcec.S256().Params()
	gx, gy := c.Field().G()

	assert.Zero(t, c.A().Sign())
	assert.Equal(t, int64(7), c.B().Int64())
	assert.Zero(t, std.Gx.Cmp(gx))
	assert.Zero(t, std.Gy.Cmp(gy))
	assert.Equal(t, int64(1), c.Field().H().Int64())
}

func TestAliases(t *testing.T) {
	byAlias, err := GetCurve("P-256")
	require.NoError(t, err)
	byName, err := GetCurve("secp256r1")
	require.NoError(t, err)
	byType, err := NewNamedCurve(P256)
	require.NoError(t, err)

	assert.Same(t, byName, byAlias)
	assert.Same(t, byName, byType)
	assert.Zero(t, elliptic.P256().Params().N.Cmp(byAlias.Order()))
}

func TestCurveTypeString(t *testing.T) {
	assert.Equal(t, "secp256k1", Secp256k1.String())
	assert.Equal(t, "secp521r1", P521.String())
	assert.Equal(t, "CurveType(42)", CurveType(42).String())
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"secp224r1", "secp256k1", "secp256r1", "secp384r1", "secp521r1"}, Names())
}

func TestConfigureRegistry(t *testing.T) {
	defer func() {
		require.NoError(t, ConfigureRegistry(nil))
	}()

	assert.Error(t, ConfigureRegistry(&RegistryConfig{CacheSize: 0}))

	require.NoError(t, ConfigureRegistry(&RegistryConfig{CacheSize: 1}))

	first, err := GetCurve("secp256k1")
	require.NoError(t, err)
	_, err = GetCurve("secp384r1")
	require.NoError(t, err)

	// evicted and rebuilt, still structurally equal
	again, err := GetCurve("secp256k1")
	require.NoError(t, err)
	assert.NotSame(t, first, again)
	assert.True(t, first.Equal(again))
}

func TestGetCurveConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	curves := make([]*Curve, 16)
	errs := make([]error, 16)

	for i := range curves {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := Names()[i%len(Names())]
			curves[i], errs[i] = GetCurve(name)
		}(i)
	}
	wg.Wait()

	for i, c := range curves {
		require.NoError(t, errs[i])
		assert.Equal(t, Names()[i%len(Names())], c.Name())
	}
}
