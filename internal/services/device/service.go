package device

import (
	"sync"

	"github.com/google/uuid"

	"multibox/internal/domain"
)

// deviceIDKey is the KV entry holding this installation's identifier.
const deviceIDKey = "device_id"

// Service mints and persists the local device identifier. Exactly one
// identifier is "mine"; it is never regenerated while the installation's
// key material is valid.
type Service struct {
	kv domain.KVStore
	mu sync.Mutex
}

// New returns a device identity service backed by the given store.
func New(kv domain.KVStore) *Service { return &Service{kv: kv} }

// CurrentDeviceID returns the persisted identifier, minting a random UUID
// and persisting it on first call. Idempotent: repeated calls on the same
// installation always return the same value. A storage failure propagates;
// nothing here recovers from an unavailable store.
func (s *Service) CurrentDeviceID() (domain.DeviceID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok, err := s.kv.Get(deviceIDKey)
	if err != nil {
		return "", err
	}
	if ok {
		return domain.DeviceID(b), nil
	}

	id := uuid.NewString()
	if err := s.kv.Set(deviceIDKey, []byte(id)); err != nil {
		return "", err
	}
	return domain.DeviceID(id), nil
}

// Compile-time assertion that Service implements domain.DeviceIdentity.
var _ domain.DeviceIdentity = (*Service)(nil)
