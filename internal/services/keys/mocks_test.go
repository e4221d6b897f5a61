package keys_test

import (
	"context"
	"fmt"
	"sync"

	"multibox/internal/domain"
)

// fakeDirectory is an in-memory DirectoryClient with failure injection.
type fakeDirectory struct {
	mu         sync.Mutex
	entries    map[domain.UserID]map[domain.DeviceID]string
	upserts    int
	failUpsert bool
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{entries: make(map[domain.UserID]map[domain.DeviceID]string)}
}

func (d *fakeDirectory) UpsertDeviceKey(
	_ context.Context,
	userID domain.UserID,
	deviceID domain.DeviceID,
	publicKeyHex string,
) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.upserts++
	if d.failUpsert {
		return fmt.Errorf("%w: injected failure", domain.ErrDirectoryUnavailable)
	}
	devices, ok := d.entries[userID]
	if !ok {
		devices = make(map[domain.DeviceID]string)
		d.entries[userID] = devices
	}
	devices[deviceID] = publicKeyHex
	return nil
}

func (d *fakeDirectory) ListDeviceKeys(
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

var _ domain.DirectoryClient = (*fakeDirectory)(nil)
