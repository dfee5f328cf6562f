package curve

import (
	"crypto/elliptic"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// CurveType identifies a curve known to the registry
type CurveType int

const (
	// Secp256k1 is the Bitcoin/Ethereum curve
	Secp256k1 CurveType = iota
	// P224 is the NIST P-224 curve (secp224r1)
	P224
	// P256 is the NIST P-256 curve (secp256r1)
	P256
	// P384 is the NIST P-384 curve (secp384r1)
	P384
	// P521 is the NIST P-521 curve (secp521r1)
	P521
)

var curveTypeNames = map[CurveType]string{
	Secp256k1: "secp256k1",
	P224:      "secp224r1",
	P256:      "secp256r1",
	P384:      "secp384r1",
	P521:      "secp521r1",
}

// String returns the registry name of the curve type
func (t CurveType) String() string {
	if name, ok := curveTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("CurveType(%d)", int(t))
}

// DomainParams are the parameters a registry entry supplies for y^2 = x^3 + ax + b
type DomainParams struct {
	P, A, B *big.Int
	Gx, Gy  *big.Int
	N, H    *big.Int
}

// nistParams adapts a crypto/elliptic curve; all NIST prime curves use
// a = -3 and cofactor 1
func nistParams(c elliptic.Curve) DomainParams {
	params := c.Params()
	return DomainParams{
		P:  params.P,
		A:  big.NewInt(-3),
		B:  params.B,
		Gx: params.Gx,
		Gy: params.Gy,
		N:  params.N,
		H:  big.NewInt(1),
	}
}

func secp256k1Params() DomainParams {
	params := btcec.S256().Params()
	return DomainParams{
		P:  params.P,
		A:  big.NewInt(0),
		B:  params.B,
		Gx: params.Gx,
		Gy: params.Gy,
		N:  params.N,
		H:  big.NewInt(1),
	}
}

var domainRegistry = map[string]func() DomainParams{
	"secp256k1": secp256k1Params,
	"secp224r1": func() DomainParams { return nistParams(elliptic.P224()) },
	"secp256r1": func() DomainParams { return nistParams(elliptic.P256()) },
	"secp384r1": func() DomainParams { return nistParams(elliptic.P384()) },
	"secp521r1": func() DomainParams { return nistParams(elliptic.P521()) },
}

var aliases = map[string]string{
	"P-224": "secp224r1",
	"P-256": "secp256r1",
	"P-384": "secp384r1",
	"P-521": "secp521r1",
}

// RegistryConfig configures the cache of constructed named curves
type RegistryConfig struct {
	// CacheSize is the maximum number of cached curves
	CacheSize int
}

// DefaultRegistryConfig returns default registry configuration
func DefaultRegistryConfig() *RegistryConfig {
	return &RegistryConfig{
		CacheSize: len(domainRegistry),
	}
}

// Validate checks the configuration
func (c *RegistryConfig) Validate() error {
	if c.CacheSize < 1 {
		return errors.New("cache size must be at least 1")
	}
	return nil
}

var (
	cacheMu    sync.RWMutex
	curveCache = mustCache(DefaultRegistryConfig().CacheSize)
)

func mustCache(size int) *lru.Cache[string, *Curve] {
	cache, err := lru.New[string, *Curve](size)
	if err != nil {
		panic(err)
	}
	return cache
}

// ConfigureRegistry replaces the curve cache. Cached curves are dropped.
func ConfigureRegistry(cfg *RegistryConfig) error {
	if cfg == nil {
		cfg = DefaultRegistryConfig()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	cache, err := lru.New[string, *Curve](cfg.CacheSize)
	if err != nil {
		return err
	}

	cacheMu.Lock()
	curveCache = cache
	cacheMu.Unlock()
	return nil
}

// Names returns the canonical names of all registered curves, sorted
func Names() []string {
	names := make([]string, 0, len(domainRegistry))
	for name := range domainRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupParams returns the domain parameters registered under name
func LookupParams(name string) (DomainParams, error) {
	canonical := canonicalName(name)
	params, ok := domainRegistry[canonical]
	if !ok {
		return DomainParams{}, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return params(), nil
}

// GetCurve returns the named curve. Curves are immutable, so the same
// instance is handed out to every caller while it stays cached.
func GetCurve(name string) (*Curve, error) {
	canonical := canonicalName(name)

	cacheMu.RLock()
	cache := curveCache
	cacheMu.RUnlock()

	if c, ok := cache.Get(canonical); ok {
		return c, nil
	}

	params, err := LookupParams(canonical)
	if err != nil {
		return nil, err
	}

	field, err := NewSubGroup(params.P, params.Gx, params.Gy, params.N, params.H)
	if err != nil {
		return nil, err
	}

	c, err := NewCurve(params.A, params.B, field, &Config{Name: canonical})
	if err != nil {
		return nil, err
	}

	cache.Add(canonical, c)
	return c, nil
}

// NewNamedCurve returns the registry curve for curveType
func NewNamedCurve(curveType CurveType) (*Curve, error) {
	name, ok := curveTypeNames[curveType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCurve, curveType)
	}
	return GetCurve(name)
}

func canonicalName(name string) string {
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}
