// Package message implements the fan-out encryption engine and the
// decryption resolver.
//
// A plaintext is encrypted once per destination device rather than once per
// message: every device of both the sender and the recipient gets its own
// NaCl box under a fresh nonce. There is no shared content key, so the
// compromise of one device's private key never exposes the units addressed
// to other devices.
package message
