package crypto

import "errors"

// Sentinel errors returned by the crypto layer. Callers should match against
// these values with [errors.Is]; there is no other failure signal.
var (
	// ErrInvalidInput is returned for caller-fixable problems: wrong salt,
	// nonce, or key length, or an empty passphrase where one is required.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthenticationFailed is returned when the AEAD authentication tag
	// does not verify. The cause is ambiguous on purpose: a wrong passphrase
	// and corrupted ciphertext are indistinguishable.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrDecryptionFailed is returned by [EnvelopeService.Open] for every
	// failure mode, malformed encoding and tag mismatch alike, so a
	// caller cannot use the error to build a padding/format oracle.
	ErrDecryptionFailed = errors.New("decryption failed: incorrect passphrase or corrupted data")
)
