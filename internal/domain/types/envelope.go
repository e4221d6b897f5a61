package types

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// NonceSize is the NaCl box nonce length in bytes.
const NonceSize = 24

// unitDelimiter joins the nonce and ciphertext hex strings in a device
// entry. Colon is safe: the hex alphabet never contains it.
const unitDelimiter = ":"

// Envelope is the wire-format encrypted message. Devices maps every
// addressed device id to an encoded encrypted unit. SenderKey is the
// sender's public key at encryption time, hex encoded; the recipient needs
// it to open its unit.
type Envelope struct {
	SenderKey string              `json:"sender_key"`
	Devices   map[DeviceID]string `json:"devices"`
}

// EncryptedUnit is one device's decoded {nonce, ciphertext} entry.
type EncryptedUnit struct {
	Nonce      [NonceSize]byte
	Ciphertext []byte
}

// Encode returns the wire form "<hex nonce>:<hex ciphertext>".
func (u EncryptedUnit) Encode() string {
	return hex.EncodeToString(u.Nonce[:]) + unitDelimiter + hex.EncodeToString(u.Ciphertext)
}

// ParseEncryptedUnit decodes the wire form produced by Encode.
func ParseEncryptedUnit(s string) (EncryptedUnit, error) {
	var unit EncryptedUnit
	nonceHex, cipherHex, found := strings.Cut(s, unitDelimiter)
	if !found {
		return unit, fmt.Errorf("encrypted unit has no %q delimiter", unitDelimiter)
	}
	nonce, err := hex.DecodeString(nonceHex)
	if err != nil {
		return unit, fmt.Errorf("decode nonce: %w", err)
	}
	if len(nonce) != NonceSize {
		return unit, fmt.Errorf("nonce is %d bytes, want %d", len(nonce), NonceSize)
	}
	ct, err := hex.DecodeString(cipherHex)
	if err != nil {
		return unit, fmt.Errorf("decode ciphertext: %w", err)
	}
	copy(unit.Nonce[:], nonce)
	unit.Ciphertext = ct
	return unit, nil
}
