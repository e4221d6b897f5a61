package types

// DirectoryEntry is one (user, device, public key) record in the remote
// device directory. Entries are upsert-only from the client's point of view:
// a device writes its own entry and never touches another device's.
type DirectoryEntry struct {
	UserID       UserID   `json:"user_id"`
	DeviceID     DeviceID `json:"device_id"`
	PublicKeyHex string   `json:"public_key"`
}
