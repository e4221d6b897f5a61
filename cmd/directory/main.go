package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"

	"multibox/internal/domain"
)

type memoryStore struct {
	mu      sync.RWMutex
	entries map[domain.UserID]map[domain.DeviceID]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		entries: make(map[domain.UserID]map[domain.DeviceID]string),
	}
}

func (ms *memoryStore) upsert(e domain.DirectoryEntry) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	devices, ok := ms.entries[e.UserID]
	if !ok {
		devices = make(map[domain.DeviceID]string)
		ms.entries[e.UserID] = devices
	}
	devices[e.DeviceID] = e.PublicKeyHex
}

func (ms *memoryStore) list(userID domain.UserID) []domain.DirectoryEntry {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	out := make([]domain.DirectoryEntry, 0, len(ms.entries[userID]))
	for deviceID, pub := range ms.entries[userID] {
		out = append(out, domain.DirectoryEntry{
			UserID:       userID,
			DeviceID:     deviceID,
			PublicKeyHex: pub,
		})
	}
	return out
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	ms := newMemoryStore()

	http.HandleFunc("/keys", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		defer r.Body.Close()
		var e domain.DirectoryEntry
		if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if e.UserID == "" || e.DeviceID == "" || e.PublicKeyHex == "" {
			http.Error(w, "user_id, device_id and public_key are required", http.StatusBadRequest)
			return
		}
		ms.upsert(e)
		logrus.WithFields(logrus.Fields{
			"user_id":   e.UserID,
			"device_id": e.DeviceID,
		}).Info("upserted device key")
		w.WriteHeader(http.StatusOK)
	})

	http.HandleFunc("/keys/", func(w http.ResponseWriter, r *http.Request) {
		userID := domain.UserID(r.URL.Path[len("/keys/"):])
		// Unknown users answer with an empty list, not 404: "no devices" is
		// a legitimate state the client distinguishes from unavailability.
		_ = json.NewEncoder(w).Encode(ms.list(userID))
	})

	logrus.WithField("addr", *addr).Info("directory listening")
	logrus.Fatal(http.ListenAndServe(*addr, nil))
}
