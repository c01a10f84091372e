package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// saltSize is the KDF salt length in bytes.
	saltSize = 16

	// nonceSize is the AES-GCM nonce length in bytes.
	nonceSize = 12

	// keySize is the derived key length: 256 bits for AES-256-GCM.
	keySize = 32

	// kdfIterations is the PBKDF2 iteration count. Deliberately high so a
	// single derivation lands in the ~100ms class on commodity hardware.
	kdfIterations = 100_000
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct{}

// NewKeyChainService constructs a [KeyChainService] using PBKDF2-SHA256
// (100,000 iterations, 16-byte salt, 256-bit key) and AES-256-GCM with a
// random 12-byte nonce per encryption.
func NewKeyChainService() KeyChainService {
	return &keyChainService{}
}

// GenerateSalt implements [KeyChainService]. It reads 16 random bytes from
// the OS CSPRNG. Returns an error if the random read fails.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey implements [KeyChainService]. The derivation is deterministic so
// that independently stored envelopes, each carrying its own salt, can all be
// decrypted later with the same passphrase.
func (k *keyChainService) DeriveKey(passphrase string, salt []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("%w: empty passphrase", ErrInvalidInput)
	}
	if len(salt) != saltSize {
		return nil, fmt.Errorf("%w: salt length = %d, want %d", ErrInvalidInput, len(salt), saltSize)
	}

	return pbkdf2.Key([]byte(passphrase), salt, kdfIterations, keySize, sha256.New), nil
}

// Encrypt implements [KeyChainService]. The nonce is always drawn fresh from
// the CSPRNG, never derived from content or a counter. Reusing a nonce with
// the same key would break both confidentiality and integrity.
func (k *keyChainService) Encrypt(plaintext, key []byte) ([]byte, []byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return ciphertext, nonce, nil
}

// Decrypt implements [KeyChainService]. A tag mismatch means either the key
// was derived from a wrong passphrase or the ciphertext was altered; the two
// cases are indistinguishable.
func (k *keyChainService) Decrypt(ciphertext, key, nonce []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != nonceSize {
		return nil, fmt.Errorf("%w: nonce length = %d, want %d", ErrInvalidInput, len(nonce), nonceSize)
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != keySize {
		return nil, fmt.Errorf("%w: key length = %d, want %d", ErrInvalidInput, len(key), keySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
