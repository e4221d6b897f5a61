// Package crypto exposes the minimal primitives used by multibox.
//
// Contents
//
//   - X25519 key pair generation and public-key re-derivation
//     (GenerateKeyPair, PublicFromSecret)
//   - NaCl box authenticated public-key encryption per device
//     (NewNonce, Seal, Open)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// All functions work on the fixed-size array types defined in
// internal/domain to avoid accidental reallocations. Callers should treat
// private keys as sensitive and rely on memzero.Zero when practical to
// reduce lifetime in memory.
package crypto
