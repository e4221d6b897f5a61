package domain

import (
	interfaces "multibox/internal/domain/interfaces"
	types "multibox/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	UserID         = types.UserID
	DeviceID       = types.DeviceID
	Fingerprint    = types.Fingerprint
	X25519Public   = types.X25519Public
	X25519Private  = types.X25519Private
	KeyPair        = types.KeyPair
	DirectoryEntry = types.DirectoryEntry
	Envelope       = types.Envelope
	EncryptedUnit  = types.EncryptedUnit
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KVStore         = interfaces.KVStore
	DirectoryClient = interfaces.DirectoryClient
	DeviceIdentity  = interfaces.DeviceIdentity
	KeyPairStore    = interfaces.KeyPairStore
	MessageCipher   = interfaces.MessageCipher
)

// Function aliases for the wire-format helpers.
var (
	X25519PublicFromHex  = types.X25519PublicFromHex
	X25519PrivateFromHex = types.X25519PrivateFromHex
	ParseEncryptedUnit   = types.ParseEncryptedUnit
)

// NonceSize re-exports the NaCl box nonce length.
const NonceSize = types.NonceSize
