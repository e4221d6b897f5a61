package app

import (
	"net/http"

	"multibox/internal/directory"
	"multibox/internal/domain"
	devicesvc "multibox/internal/services/device"
	keysvc "multibox/internal/services/keys"
	messagesvc "multibox/internal/services/message"
	"multibox/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	KV        domain.KVStore
	Devices   domain.DeviceIdentity
	Keys      domain.KeyPairStore
	Messages  domain.MessageCipher
	Directory domain.DirectoryClient
	HTTP      *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	// Sealed file-backed local store
	kv := store.NewSealedFileStore(cfg.Home, cfg.Passphrase)

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	// Directory client (uses provided HTTP client)
	dc := directory.NewHTTP(cfg.DirectoryURL, httpClient)

	// High-level services
	deviceSvc := devicesvc.New(kv)
	keySvc := keysvc.New(kv, deviceSvc, dc)
	messageSvc := messagesvc.New(domain.UserID(cfg.UserID), keySvc, deviceSvc, dc)

	return &Wire{
		KV:        kv,
		Devices:   deviceSvc,
		Keys:      keySvc,
		Messages:  messageSvc,
		Directory: dc,
		HTTP:      httpClient,
	}, nil
}
