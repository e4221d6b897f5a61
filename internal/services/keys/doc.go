// Package keys owns the local device's X25519 key pair: lazy generation,
// sealed persistence, and publication of the public half to the device
// directory as one logical unit.
package keys
