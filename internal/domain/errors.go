package domain

import "errors"

// Typed failure modes callers discriminate with errors.Is. Addressing and
// integrity failures are distinct on purpose: "not for me" is an expected
// multi-device condition, "authentication failed" can indicate tampering.
var (
	// ErrNoLocalIdentity means no key pair exists yet for an operation that
	// requires one. Recoverable by running the create path first.
	ErrNoLocalIdentity = errors.New("no local identity: key pair has not been created on this device")

	// ErrDirectoryUnavailable wraps transport or storage failures talking to
	// the device directory. Retryable by the calling layer; never cached.
	ErrDirectoryUnavailable = errors.New("device directory unavailable")

	// ErrNoRecipientDevices means the union of sender and recipient devices
	// was empty at encryption time. A user-facing condition, not a bug.
	ErrNoRecipientDevices = errors.New("recipient has no devices to receive encrypted messages")

	// ErrNotAddressedToThisDevice means the envelope's device map has no
	// entry for the local device id.
	ErrNotAddressedToThisDevice = errors.New("envelope is not addressed to this device")

	// ErrDecryptionFailed means authenticated decryption did not verify.
	// Fatal to the message; never conflated with addressing misses.
	ErrDecryptionFailed = errors.New("decryption failed: ciphertext did not authenticate")
)
