package store

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"multibox/internal/domain"
)

const storeFilename = "keystore.json.enc"

// SealedFileStore persists a flat key-value map in a single sealed file.
// Values are held encrypted at rest under a passphrase-derived key; the
// whole file is rewritten atomically on every Set.
type SealedFileStore struct {
	dir        string
	passphrase string
	mu         sync.Mutex
}

// NewSealedFileStore returns a SealedFileStore rooted at dir.
func NewSealedFileStore(dir, passphrase string) *SealedFileStore {
	return &SealedFileStore{dir: dir, passphrase: passphrase}
}

// Get returns the value stored under key, with ok=false when absent.
func (s *SealedFileStore) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return nil, false, err
	}
	v, ok := m[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set durably stores value under key.
func (s *SealedFileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return err
	}
	m[key] = append([]byte(nil), value...)
	return s.save(m)
}

// load reads and unseals the store file. A missing file yields an empty map.
func (s *SealedFileStore) load() (map[string][]byte, error) {
	m := make(map[string][]byte)

	b, err := readFile(filepath.Join(s.dir, storeFilename))
	if err != nil {
		return nil, err
	}
	if b == nil {
		return m, nil
	}
	raw, err := unseal(s.passphrase, b)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *SealedFileStore) save(m map[string][]byte) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	ct, err := seal(s.passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, storeFilename), ct, 0o600)
}

// Compile-time assertion that SealedFileStore implements domain.KVStore.
var _ domain.KVStore = (*SealedFileStore)(nil)
