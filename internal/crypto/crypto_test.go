package crypto_test

import (
	"bytes"
	"testing"

	"multibox/internal/crypto"
)

func TestGenerateKeyPair_PublicMatchesSecret(t *testing.T) {
	pair, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	pub, err := crypto.PublicFromSecret(pair.Private)
	if err != nil {
		t.Fatalf("derive public: %v", err)
	}
	if pub != pair.Public {
		t.Fatal("re-derived public key differs from generated one")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	alice, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("generate alice: %v", err)
	}
	bob, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("generate bob: %v", err)
	}
	nonce, err := crypto.NewNonce()
	if err != nil {
		t.Fatalf("nonce: %v", err)
	}

	msg := []byte("hello")
	ct := crypto.Seal(msg, nonce, bob.Public, alice.Private)

	got, ok := crypto.Open(ct, nonce, alice.Public, bob.Private)
	if !ok {
		t.Fatal("open failed")
	}
	if !bytes.Equal(got, msg) {
		t.Fatalf("got %q, want %q", got, msg)
	}
}

func TestOpen_WrongKeyFails(t *testing.T) {
	alice, _ := crypto.GenerateKeyPair()
	bob, _ := crypto.GenerateKeyPair()
	eve, _ := crypto.GenerateKeyPair()
	nonce, _ := crypto.NewNonce()

	ct := crypto.Seal([]byte("hello"), nonce, bob.Public, alice.Private)

	if _, ok := crypto.Open(ct, nonce, alice.Public, eve.Private); ok {
		t.Fatal("open with wrong private key should fail")
	}
	if _, ok := crypto.Open(ct, nonce, eve.Public, bob.Private); ok {
		t.Fatal("open with wrong sender public key should fail")
	}
}

func TestNewNonce_Distinct(t *testing.T) {
	a, err := crypto.NewNonce()
	if err != nil {
		t.Fatalf("nonce: %v", err)
	}
	b, err := crypto.NewNonce()
	if err != nil {
		t.Fatalf("nonce: %v", err)
	}
	if a == b {
		t.Fatal("two fresh nonces are equal")
	}
}
