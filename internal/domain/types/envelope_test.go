package types_test

import (
	"bytes"
	"strings"
	"testing"

	"multibox/internal/domain/types"
)

func TestEncryptedUnit_EncodeParse_RoundTrip(t *testing.T) {
	unit := types.EncryptedUnit{Ciphertext: []byte{0xde, 0xad, 0xbe, 0xef}}
	for i := range unit.Nonce {
		unit.Nonce[i] = byte(i)
	}

	got, err := types.ParseEncryptedUnit(unit.Encode())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Nonce != unit.Nonce {
		t.Fatal("nonce mismatch after round trip")
	}
	if !bytes.Equal(got.Ciphertext, unit.Ciphertext) {
		t.Fatal("ciphertext mismatch after round trip")
	}
}

func TestParseEncryptedUnit_Rejects(t *testing.T) {
	longNonce := strings.Repeat("00", types.NonceSize+1)
	shortNonce := strings.Repeat("00", types.NonceSize-1)
	okNonce := strings.Repeat("00", types.NonceSize)

	cases := []struct {
		name string
		in   string
	}{
		{"no delimiter", okNonce + "deadbeef"},
		{"nonce too long", longNonce + ":deadbeef"},
		{"nonce too short", shortNonce + ":deadbeef"},
		{"nonce not hex", strings.Repeat("zz", types.NonceSize) + ":deadbeef"},
		{"ciphertext not hex", okNonce + ":nothex"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := types.ParseEncryptedUnit(tc.in); err == nil {
				t.Fatalf("parse %q: want error", tc.in)
			}
		})
	}
}

func TestX25519KeyHex_RoundTrip(t *testing.T) {
	var pub types.X25519Public
	pub[0], pub[31] = 0xab, 0x01

	got, err := types.X25519PublicFromHex(pub.Hex())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != pub {
		t.Fatal("public key mismatch after hex round trip")
	}

	if _, err := types.X25519PublicFromHex("abcd"); err == nil {
		t.Fatal("want error for truncated key")
	}
	if _, err := types.X25519PublicFromHex(strings.Repeat("zz", 32)); err == nil {
		t.Fatal("want error for non-hex key")
	}
}
