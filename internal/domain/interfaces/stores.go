package interfaces

// KVStore is the local durable key-value capability the core persists
// through. Implementations must survive process restarts; beyond
// get/set/absent semantics the core assumes nothing about the medium.
type KVStore interface {
	// Get returns the value for key, reporting absence via ok=false.
	Get(key string) (value []byte, ok bool, err error)
	// Set durably stores value under key, replacing any prior value.
	Set(key string, value []byte) error
}
