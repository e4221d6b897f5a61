// Package store provides the local key-value persistence used by multibox.
//
// It contains concrete implementations of the domain.KVStore capability:
//
//   - SealedFileStore: a single on-disk file sealed with a passphrase-derived
//     key (scrypt + ChaCha20-Poly1305), used for device id and private key
//     material.
//   - Memory: a process-local map, used in tests and anywhere durability is
//     not required.
//
// All methods are concurrency-safe via internal locking. Stored files
// typically live under the user's configured home directory.
package store
