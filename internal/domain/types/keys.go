package types

import (
	"encoding/hex"
	"fmt"
)

// X25519Public is a Curve25519 public key.
type X25519Public [32]byte

// Slice returns the key as a []byte.
func (p X25519Public) Slice() []byte { return p[:] }

// Hex returns the lowercase hex encoding of the key.
func (p X25519Public) Hex() string { return hex.EncodeToString(p[:]) }

// X25519Private is a Curve25519 private key.
type X25519Private [32]byte

// Slice returns the key as a []byte.
func (k X25519Private) Slice() []byte { return k[:] }

// Hex returns the lowercase hex encoding of the key.
func (k X25519Private) Hex() string { return hex.EncodeToString(k[:]) }

// X25519PublicFromHex decodes a 64-character hex string into a public key.
func X25519PublicFromHex(s string) (X25519Public, error) {
	var pub X25519Public
	b, err := hex.DecodeString(s)
	if err != nil {
		return pub, fmt.Errorf("decode public key: %w", err)
	}
	if len(b) != len(pub) {
		return pub, fmt.Errorf("public key is %d bytes, want %d", len(b), len(pub))
	}
	copy(pub[:], b)
	return pub, nil
}

// X25519PrivateFromHex decodes a 64-character hex string into a private key.
func X25519PrivateFromHex(s string) (X25519Private, error) {
	var priv X25519Private
	b, err := hex.DecodeString(s)
	if err != nil {
		return priv, fmt.Errorf("decode private key: %w", err)
	}
	if len(b) != len(priv) {
		return priv, fmt.Errorf("private key is %d bytes, want %d", len(b), len(priv))
	}
	copy(priv[:], b)
	return priv, nil
}

// KeyPair holds a device's X25519 key-exchange pair. The private half never
// leaves the local store; only Public is ever published.
type KeyPair struct {
	Public  X25519Public
	Private X25519Private
}
