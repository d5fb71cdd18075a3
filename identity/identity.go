// Package identity defines the caller and attester identities used by the
// resolver protocol.
//
// An Address is derived from a public key, never chosen freely. Supported key
// kinds mirror the issuer-key encodings used elsewhere in the xdao stack:
// - ed25519
// - dilithium3
package identity

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/cloudflare/circl/sign/dilithium/mode3"
	"golang.org/x/crypto/sha3"
)

// AddressSize is the byte length of an Address.
const AddressSize = 20

// Address is a fixed-size identity derived from a public key.
//
// The zero value is the null identity and is never a valid caller.
type Address [AddressSize]byte

// Zero is the null identity.
var Zero Address

// IsZero reports whether a is the null identity.
func (a Address) IsZero() bool { return a == Zero }

// String returns the 0x-prefixed lowercase hex encoding.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Parse decodes a 0x-prefixed or bare hex address.
func Parse(s string) (Address, error) {
	var a Address
	h := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if len(h) != AddressSize*2 {
		return Zero, fmt.Errorf("identity: invalid address length %d", len(h))
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return Zero, fmt.Errorf("identity: invalid address hex: %w", err)
	}
	copy(a[:], b)
	return a, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures and wiring.
func MustParse(s string) Address {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromED25519 derives the address for an ed25519 public key.
func FromED25519(pub ed25519.PublicKey) (Address, error) {
	if len(pub) != ed25519.PublicKeySize {
		return Zero, fmt.Errorf("identity: invalid ed25519 public key length %d", len(pub))
	}
	return derive("ed25519", pub), nil
}

// FromDilithium3 derives the address for a dilithium3 public key.
func FromDilithium3(pub *mode3.PublicKey) (Address, error) {
	if pub == nil {
		return Zero, fmt.Errorf("identity: missing dilithium3 public key")
	}
	raw, err := pub.MarshalBinary()
	if err != nil {
		return Zero, fmt.Errorf("identity: pack dilithium3 public key: %w", err)
	}
	return derive("dilithium3", raw), nil
}

// derive hashes the algorithm tag and raw key bytes with sha3-256 and keeps
// the trailing AddressSize bytes. The tag keeps addresses disjoint across
// key kinds even when raw key bytes collide.
func derive(alg string, raw []byte) Address {
	h := sha3.New256()
	_, _ = h.Write([]byte(alg))
	_, _ = h.Write([]byte{':'})
	_, _ = h.Write(raw)
	sum := h.Sum(nil)

	var a Address
	copy(a[:], sum[len(sum)-AddressSize:])
	return a
}
