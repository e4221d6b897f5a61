package interfaces

import (
	"context"

	domaintypes "multibox/internal/domain/types"
)

// DirectoryClient is how we talk to the remote device-key directory, all
// with context. Both operations may block on the network; cancellation and
// timeouts surface as transport errors, never cryptographic ones.
type DirectoryClient interface {
	// UpsertDeviceKey publishes this device's public key under
	// (userID, deviceID). It never overwrites another device's entry.
	UpsertDeviceKey(
		ctx context.Context,
		userID domaintypes.UserID,
		deviceID domaintypes.DeviceID,
		publicKeyHex string,
	) error

	// ListDeviceKeys returns every registered device and its public key for
	// userID. A user with no devices yields an empty list, not an error.
	ListDeviceKeys(
		ctx context.Context,
		userID domaintypes.UserID,
	) ([]domaintypes.DirectoryEntry, error)
}
