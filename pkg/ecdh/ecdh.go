// Package ecdh computes Diffie-Hellman shared secrets between two keypairs.
//
// At least one side of an exchange must hold a private key. The two
// keypairs are expected to share a curve; this is not checked.
package ecdh

import (
	"fmt"

	"github.com/Caqil/ecgroup/internal/security"
	"github.com/Caqil/ecgroup/pkg/crypto/curve"
	"github.com/Caqil/ecgroup/pkg/crypto/hash"
	"github.com/Caqil/ecgroup/pkg/keygen"
)

// ECDH is a key agreement session for a local keypair
type ECDH struct {
	keypair *keygen.Keypair
}

// New creates a session for the local keypair
func New(kp *keygen.Keypair) (*ECDH, error) {
	if kp == nil {
		return nil, ErrNilKeypair
	}
	return &ECDH{keypair: kp}, nil
}

// Keypair returns the local keypair
func (e *ECDH) Keypair() *keygen.Keypair {
	return e.keypair
}

// Secret computes the shared point. The local private key is preferred;
// otherwise the peer's private key is applied to the local public key.
func (e *ECDH) Secret(peer *keygen.Keypair) (*curve.Point, error) {
	if peer == nil {
		return nil, ErrNilKeypair
	}

	local := e.keypair

	var (
		secret curve.Element
		err    error
	)
	switch {
	case local.CanSign() && peer.CanEncrypt():
		secret, err = peer.Public().ScalarMult(local.Private())
	case local.CanEncrypt() && peer.CanSign():
		secret, err = local.Public().ScalarMult(peer.Private())
	default:
		return nil, ErrMissingKeyMaterial
	}
	if err != nil {
		return nil, fmt.Errorf("compute shared secret: %w", err)
	}

	point, ok := secret.(*curve.Point)
	if !ok {
		return nil, ErrInfiniteSecret
	}

	return point, nil
}

// SharedKey derives length bytes of key material from the shared secret
// using HKDF-SHA256 over the x-coordinate, left-padded to the field width.
func (e *ECDH) SharedKey(peer *keygen.Keypair, salt, info []byte, length int) ([]byte, error) {
	secret, err := e.Secret(peer)
	if err != nil {
		return nil, err
	}

	ikm := xBytes(secret)
	defer security.SecureZero(ikm)

	return hash.HKDF(ikm, salt, info, length)
}

// xBytes returns the big-endian x-coordinate padded to the byte width of p
func xBytes(p *curve.Point) []byte {
	width := (p.Curve().Field().P().BitLen() + 7) / 8
	x := p.X()
	x.Mod(x, p.Curve().Field().P())
	return x.FillBytes(make([]byte, width))
}
