package interfaces

import (
	"context"

	domaintypes "multibox/internal/domain/types"
)

// DeviceIdentity yields the stable identifier of the current installation.
type DeviceIdentity interface {
	// CurrentDeviceID returns the persisted device id, minting one on first
	// call. Repeated calls on the same installation return the same value.
	CurrentDeviceID() (domaintypes.DeviceID, error)
}

// KeyPairStore owns the local device's key-exchange pair.
type KeyPairStore interface {
	// GetOrCreateKeyPair returns the device's key pair, generating,
	// persisting and publishing one as a single logical unit if none exists.
	GetOrCreateKeyPair(
		ctx context.Context,
		userID domaintypes.UserID,
	) (domaintypes.KeyPair, error)

	// LocalSecretKey returns the already-materialised private key. It fails
	// with ErrNoLocalIdentity if no key pair was ever created here.
	LocalSecretKey(userID domaintypes.UserID) (domaintypes.X25519Private, error)
}

// MessageCipher fans a plaintext out to every device of sender and
// recipient, and opens envelopes addressed to this device.
type MessageCipher interface {
	EncryptForRecipient(
		ctx context.Context,
		plaintext []byte,
		recipientUserID domaintypes.UserID,
	) (domaintypes.Envelope, error)

	Decrypt(envelope domaintypes.Envelope) ([]byte, error)
}
