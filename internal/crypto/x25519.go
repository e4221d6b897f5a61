package crypto

import (
	"crypto/rand"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"

	"multibox/internal/domain"
)

// GenerateKeyPair returns a fresh Curve25519 key pair suitable for NaCl box.
func GenerateKeyPair() (domain.KeyPair, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return domain.KeyPair{}, err
	}
	return domain.KeyPair{
		Public:  domain.X25519Public(*pub),
		Private: domain.X25519Private(*priv),
	}, nil
}

// PublicFromSecret re-derives the public key matching priv. The stored
// private key is the single source of truth; the public half is recomputed
// rather than persisted alongside it.
func PublicFromSecret(priv domain.X25519Private) (domain.X25519Public, error) {
	var pub domain.X25519Public
	pb, err := curve25519.X25519(priv.Slice(), curve25519.Basepoint)
	if err != nil {
		return pub, err
	}
	copy(pub[:], pb)
	return pub, nil
}
