package crypto

import (
	"crypto/rand"

	"golang.org/x/crypto/nacl/box"

	"multibox/internal/domain"
)

// NewNonce returns a cryptographically random 24-byte box nonce. One nonce
// is drawn per (message, device); nonces are never reused for a key pair.
func NewNonce() ([domain.NonceSize]byte, error) {
	var nonce [domain.NonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nonce, err
	}
	return nonce, nil
}

// Seal encrypts and authenticates plaintext from the sender's private key to
// the peer's public key (NaCl crypto_box: X25519 + XSalsa20-Poly1305).
func Seal(
	plaintext []byte,
	nonce [domain.NonceSize]byte,
	peerPub domain.X25519Public,
	senderPriv domain.X25519Private,
) []byte {
	return box.Seal(nil, plaintext, (*[24]byte)(&nonce), (*[32]byte)(&peerPub), (*[32]byte)(&senderPriv))
}

// Open authenticates and decrypts a Seal output. ok is false when the
// ciphertext does not verify under (senderPub, recipientPriv, nonce).
func Open(
	ciphertext []byte,
	nonce [domain.NonceSize]byte,
	senderPub domain.X25519Public,
	recipientPriv domain.X25519Private,
) ([]byte, bool) {
	return box.Open(nil, ciphertext, (*[24]byte)(&nonce), (*[32]byte)(&senderPub), (*[32]byte)(&recipientPriv))
}
