package keys

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"multibox/internal/crypto"
	"multibox/internal/domain"
	"multibox/internal/util/memzero"
)

// secretKeyPrefix namespaces per-user secret keys in the local store. The
// value is the hex-encoded private key; the public half is re-derived from
// it on every load rather than persisted.
const secretKeyPrefix = "secret_key:"

func secretKeyKey(userID domain.UserID) string {
	return secretKeyPrefix + userID.String()
}

// Service manages the device's key pair using a backing store, the device
// identity, and the directory client.
//
// Creation and publish form the one critical section in the system: two
// concurrent first-time callers must not generate two pairs and publish the
// second over the first, which would silently invalidate messages already
// sent under the first. A single mutex serialises the check-create-publish
// sequence.
type Service struct {
	kv      domain.KVStore
	devices domain.DeviceIdentity
	dir     domain.DirectoryClient
	mu      sync.Mutex
}

// New returns a key pair store wired to the given collaborators.
func New(kv domain.KVStore, devices domain.DeviceIdentity, dir domain.DirectoryClient) *Service {
	return &Service{kv: kv, devices: devices, dir: dir}
}

// GetOrCreateKeyPair returns the local device's key pair. When no private
// key exists yet it generates one, publishes the public half under
// (userID, deviceID), and only then persists the private half. A publish
// failure discards the generated pair entirely: an unpublished key must
// never be treated as the device's identity.
func (s *Service) GetOrCreateKeyPair(
	ctx context.Context,
	userID domain.UserID,
) (domain.KeyPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok, err := s.kv.Get(secretKeyKey(userID))
	if err != nil {
		return domain.KeyPair{}, err
	}
	if ok {
		return pairFromSecretHex(string(b))
	}

	pair, err := crypto.GenerateKeyPair()
	if err != nil {
		return domain.KeyPair{}, err
	}
	deviceID, err := s.devices.CurrentDeviceID()
	if err != nil {
		return domain.KeyPair{}, err
	}

	if err := s.dir.UpsertDeviceKey(ctx, userID, deviceID, pair.Public.Hex()); err != nil {
		memzero.Zero(pair.Private[:])
		return domain.KeyPair{}, err
	}

	// Persist only after the publish succeeded. If this write fails the
	// directory entry is stale, but the next create upserts over it.
	if err := s.kv.Set(secretKeyKey(userID), []byte(pair.Private.Hex())); err != nil {
		memzero.Zero(pair.Private[:])
		return domain.KeyPair{}, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":     userID,
		"device_id":   deviceID,
		"fingerprint": crypto.Fingerprint(pair.Public.Slice()),
	}).Info("generated and published device key pair")

	return pair, nil
}

// LocalSecretKey returns the already-materialised private key for userID.
// It fails with domain.ErrNoLocalIdentity when no pair was ever created on
// this device; callers recover by running GetOrCreateKeyPair first.
func (s *Service) LocalSecretKey(userID domain.UserID) (domain.X25519Private, error) {
	b, ok, err := s.kv.Get(secretKeyKey(userID))
	if err != nil {
		return domain.X25519Private{}, err
	}
	if !ok {
		return domain.X25519Private{}, domain.ErrNoLocalIdentity
	}
	priv, err := domain.X25519PrivateFromHex(string(b))
	if err != nil {
		return domain.X25519Private{}, err
	}
	return priv, nil
}

func pairFromSecretHex(s string) (domain.KeyPair, error) {
	priv, err := domain.X25519PrivateFromHex(s)
	if err != nil {
		return domain.KeyPair{}, err
	}
	pub, err := crypto.PublicFromSecret(priv)
	if err != nil {
		return domain.KeyPair{}, err
	}
	return domain.KeyPair{Public: pub, Private: priv}, nil
}

// Compile-time assertion that Service implements domain.KeyPairStore.
var _ domain.KeyPairStore = (*Service)(nil)
