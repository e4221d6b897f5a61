package message

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"multibox/internal/crypto"
	"multibox/internal/domain"
)

// Service encrypts plaintexts for every device of a conversation and opens
// envelopes addressed to this device.
//
// High-level flow:
//   - Encrypt: resolve the local key pair, list the recipient's and our own
//     devices, union them by device id, and seal the plaintext once per
//     device under a fresh nonce.
//   - Decrypt: locate our own entry in the envelope's device map and open
//     it with the local private key and the embedded sender public key.
type Service struct {
	userID  domain.UserID
	keys    domain.KeyPairStore
	devices domain.DeviceIdentity
	dir     domain.DirectoryClient
}

// New constructs a message cipher for the local user.
func New(
	userID domain.UserID,
	keys domain.KeyPairStore,
	devices domain.DeviceIdentity,
	dir domain.DirectoryClient,
) *Service {
	return &Service{userID: userID, keys: keys, devices: devices, dir: dir}
}

// EncryptForRecipient produces one envelope for plaintext, addressed to
// every device of recipientUserID and of the sender. Including our own
// devices lets a user read their sent messages everywhere they are logged
// in. Each device gets an independent nonce and ciphertext.
func (s *Service) EncryptForRecipient(
	ctx context.Context,
	plaintext []byte,
	recipientUserID domain.UserID,
) (domain.Envelope, error) {
	pair, err := s.keys.GetOrCreateKeyPair(ctx, s.userID)
	if err != nil {
		return domain.Envelope{}, err
	}

	targets, err := s.resolveTargets(ctx, recipientUserID)
	if err != nil {
		return domain.Envelope{}, err
	}

	env := domain.Envelope{
		SenderKey: pair.Public.Hex(),
		Devices:   make(map[domain.DeviceID]string, len(targets)),
	}
	for deviceID, pub := range targets {
		nonce, err := crypto.NewNonce()
		if err != nil {
			return domain.Envelope{}, err
		}
		unit := domain.EncryptedUnit{
			Nonce:      nonce,
			Ciphertext: crypto.Seal(plaintext, nonce, pub, pair.Private),
		}
		env.Devices[deviceID] = unit.Encode()
	}
	return env, nil
}

// resolveTargets unions the recipient's devices with the sender's own,
// keyed by device id. A device registered under both users keeps a single
// entry. A recipient with no registered devices fails before any unit is
// sealed: a message nobody can receive is not a valid message.
func (s *Service) resolveTargets(
	ctx context.Context,
	recipientUserID domain.UserID,
) (map[domain.DeviceID]domain.X25519Public, error) {
	recipient, err := s.dir.ListDeviceKeys(ctx, recipientUserID)
	if err != nil {
		return nil, err
	}
	if len(recipient) == 0 {
		return nil, domain.ErrNoRecipientDevices
	}
	own, err := s.dir.ListDeviceKeys(ctx, s.userID)
	if err != nil {
		return nil, err
	}

	targets := make(map[domain.DeviceID]domain.X25519Public, len(recipient)+len(own))
	for _, e := range append(recipient, own...) {
		pub, err := domain.X25519PublicFromHex(e.PublicKeyHex)
		if err != nil {
			return nil, fmt.Errorf("directory entry for %s/%s: %w", e.UserID, e.DeviceID, err)
		}
		targets[e.DeviceID] = pub
	}
	return targets, nil
}

// Decrypt opens the unit addressed to this device and returns the
// plaintext bytes. It fails with domain.ErrNotAddressedToThisDevice when
// the device map has no entry for us (an expected multi-device condition),
// and with domain.ErrDecryptionFailed when authentication fails (possible
// tampering or key mismatch). The two are never conflated.
func (s *Service) Decrypt(envelope domain.Envelope) ([]byte, error) {
	deviceID, err := s.devices.CurrentDeviceID()
	if err != nil {
		return nil, err
	}
	priv, err := s.keys.LocalSecretKey(s.userID)
	if err != nil {
		return nil, err
	}

	encoded, ok := envelope.Devices[deviceID]
	if !ok {
		logrus.WithFields(logrus.Fields{
			"device_id": deviceID,
			"addressed": len(envelope.Devices),
		}).Debug("envelope not addressed to this device")
		return nil, domain.ErrNotAddressedToThisDevice
	}

	senderPub, err := domain.X25519PublicFromHex(envelope.SenderKey)
	if err != nil {
		return nil, fmt.Errorf("%w: bad sender key: %v", domain.ErrDecryptionFailed, err)
	}
	unit, err := domain.ParseEncryptedUnit(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecryptionFailed, err)
	}

	plaintext, ok := crypto.Open(unit.Ciphertext, unit.Nonce, senderPub, priv)
	if !ok {
		// Integrity failures get their own log shape so operators can tell
		// tampering apart from routine addressing misses.
		logrus.WithFields(logrus.Fields{
			"device_id":          deviceID,
			"sender_fingerprint": crypto.Fingerprint(senderPub.Slice()),
		}).Warn("envelope failed authenticated decryption")
		return nil, domain.ErrDecryptionFailed
	}
	return plaintext, nil
}

// IsNotForThisDevice reports whether err is the expected addressing miss.
func IsNotForThisDevice(err error) bool {
	return errors.Is(err, domain.ErrNotAddressedToThisDevice)
}

// Compile-time assertion that Service implements domain.MessageCipher.
var _ domain.MessageCipher = (*Service)(nil)
