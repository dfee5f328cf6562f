// Package hash provides hashing and key derivation over curve secrets
package hash

import (
	"encoding/binary"
	"io"
	"math/big"

	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/hkdf"
)

// domainTag prefixes every derivation context
const domainTag = "ecgroup-v1|"

// Sum256 returns the SHA-256 digest of data
func Sum256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// HashToScalar maps data to a scalar in [1, modulus).
// A zero reduction is retried with an incremented counter prefix.
func HashToScalar(data []byte, modulus *big.Int) (*big.Int, error) {
	if modulus == nil || modulus.Cmp(big.NewInt(1)) <= 0 {
		return nil, ErrInvalidModulus
	}

	// enough output to make the modular bias negligible
	width := (modulus.BitLen()+7)/8 + 16

	var counter [4]byte
	for i := uint32(0); ; i++ {
		binary.BigEndian.PutUint32(counter[:], i)

		expanded, err := HKDF(data, counter[:], []byte(domainTag+"scalar"), width)
		if err != nil {
			return nil, err
		}

		k := new(big.Int).SetBytes(expanded)
		k.Mod(k, modulus)
		if k.Sign() != 0 {
			return k, nil
		}
	}
}

// HKDF derives length bytes of key material using HKDF-SHA256
func HKDF(secret, salt, info []byte, length int) ([]byte, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}

	hkdfReader := hkdf.New(sha256.New, secret, salt, info)

	key := make([]byte, length)
	if _, err := io.ReadFull(hkdfReader, key); err != nil {
		return nil, err
	}

	return key, nil
}

// DeriveKey derives a key from a secret with domain separation by context
func DeriveKey(secret, salt []byte, context string, length int) ([]byte, error) {
	return HKDF(secret, salt, []byte(domainTag+context), length)
}
