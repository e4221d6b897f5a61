package message_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"multibox/internal/domain"
	devicesvc "multibox/internal/services/device"
	keysvc "multibox/internal/services/keys"
	"multibox/internal/services/message"
	"multibox/internal/store"
)

// sharedDirectory is the one in-memory directory all test installations
// publish to, standing in for the remote key registry.
type sharedDirectory struct {
	mu      sync.Mutex
	entries map[domain.UserID]map[domain.DeviceID]string
}

func newSharedDirectory() *sharedDirectory {
	return &sharedDirectory{entries: make(map[domain.UserID]map[domain.DeviceID]string)}
}

func (d *sharedDirectory) UpsertDeviceKey(
	_ context.Context,
	userID domain.UserID,
	deviceID domain.DeviceID,
	publicKeyHex string,
) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	devices, ok := d.entries[userID]
	if !ok {
		devices = make(map[domain.DeviceID]string)
		d.entries[userID] = devices
	}
	devices[deviceID] = publicKeyHex
	return nil
}

func (d *sharedDirectory) ListDeviceKeys(
	_ context.Context,
	userID domain.UserID,
) ([]domain.DirectoryEntry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]domain.DirectoryEntry, 0, len(d.entries[userID]))
	for deviceID, pub := range d.entries[userID] {
		out = append(out, domain.DirectoryEntry{
			UserID:       userID,
			DeviceID:     deviceID,
			PublicKeyHex: pub,
		})
	}
	return out, nil
}

var _ domain.DirectoryClient = (*sharedDirectory)(nil)

// installation models one device of one user: its own local store and
// services, sharing only the directory with other installations.
type installation struct {
	userID   domain.UserID
	deviceID domain.DeviceID
	messages *message.Service
}

// newInstallation registers a fresh device for userID in the directory.
func newInstallation(t *testing.T, dir *sharedDirectory, userID domain.UserID) *installation {
	t.Helper()

	kv := store.NewMemory()
	devices := devicesvc.New(kv)
	keys := keysvc.New(kv, devices, dir)

	_, err := keys.GetOrCreateKeyPair(context.Background(), userID)
	require.NoError(t, err)
	deviceID, err := devices.CurrentDeviceID()
	require.NoError(t, err)

	return &installation{
		userID:   userID,
		deviceID: deviceID,
		messages: message.New(userID, keys, devices, dir),
	}
}

// newBareInstallation wires the services without creating or publishing a
// key pair, modelling a device that never ran the create path.
func newBareInstallation(t *testing.T, dir *sharedDirectory, userID domain.UserID) *installation {
	t.Helper()

	kv := store.NewMemory()
	devices := devicesvc.New(kv)
	keys := keysvc.New(kv, devices, dir)

	deviceID, err := devices.CurrentDeviceID()
	require.NoError(t, err)

	return &installation{
		userID:   userID,
		deviceID: deviceID,
		messages: message.New(userID, keys, devices, dir),
	}
}
