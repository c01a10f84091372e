package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "github.com/MKhiriev/go-doc-vault/models"

// KeyChainService owns the cryptographic primitives of the client: key
// derivation from section passphrases and authenticated encryption of raw
// byte payloads. It knows nothing about sections, storage, or the network.
//
// Scheme:
//
//	salt = GenerateSalt()                  (fresh per envelope)
//	key  = DeriveKey(passphrase, salt)     (deterministic, slow on purpose)
//	ct, nonce = Encrypt(plaintext, key)    (fresh random nonce per call)
type KeyChainService interface {
	// GenerateSalt returns a fresh random 16-byte KDF salt.
	// The salt is not a secret; it is stored in the clear next to the
	// ciphertext so the same passphrase can re-derive the key later.
	GenerateSalt() ([]byte, error)

	// DeriveKey stretches passphrase+salt into a 256-bit key via
	// PBKDF2-SHA256 with a fixed high iteration count. Deterministic:
	// the same inputs always produce the same key. The result is
	// sensitive short-lived material; callers must not cache it beyond
	// one encrypt/decrypt operation.
	// Returns ErrInvalidInput if the passphrase is empty or the salt is
	// not exactly 16 bytes.
	DeriveKey(passphrase string, salt []byte) ([]byte, error)

	// Encrypt seals plaintext with AES-256-GCM under key, generating a
	// fresh random 12-byte nonce. Returns the ciphertext (tag included)
	// and the nonce separately. Pure over its inputs apart from the
	// nonce randomness.
	Encrypt(plaintext, key []byte) (ciphertext, nonce []byte, err error)

	// Decrypt opens ciphertext with key and nonce. Returns
	// ErrAuthenticationFailed when the tag does not verify, which is the
	// only way to distinguish a wrong key from tampered data, and
	// ErrInvalidInput for wrong key or nonce lengths.
	Decrypt(ciphertext, key, nonce []byte) ([]byte, error)
}

// EnvelopeService packages the full passphrase -> envelope pipeline:
// salt generation, key derivation, AEAD, and the base64 transport encoding.
// It is the only crypto surface the service layer talks to.
type EnvelopeService interface {
	// Seal encrypts plaintext under passphrase and returns the transport
	// envelope: independently base64-encoded ciphertext, nonce, and salt.
	// A fresh salt and nonce are drawn for every call.
	Seal(plaintext []byte, passphrase string) (models.EncryptedEnvelope, error)

	// Open decodes and decrypts an envelope. Every failure, from bad
	// base64 and wrong field lengths to a tag mismatch, collapses into
	// ErrDecryptionFailed so the error reveals nothing about the cause.
	Open(envelope models.EncryptedEnvelope, passphrase string) ([]byte, error)
}
