package crypto

import (
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-doc-vault/models"
)

// envelopeService is the private implementation of [EnvelopeService].
type envelopeService struct {
	keyChain KeyChainService
}

// NewEnvelopeService constructs an [EnvelopeService] on top of keyChain.
func NewEnvelopeService(keyChain KeyChainService) EnvelopeService {
	return &envelopeService{keyChain: keyChain}
}

// Seal implements [EnvelopeService]. The three fields are encoded
// independently rather than concatenated, so the persistence layer can store them
// as separate columns. Payloads up to tens of megabytes pass through with one
// plaintext and one ciphertext copy resident at a time.
func (e *envelopeService) Seal(plaintext []byte, passphrase string) (models.EncryptedEnvelope, error) {
	salt, err := e.keyChain.GenerateSalt()
	if err != nil {
		return models.EncryptedEnvelope{}, fmt.Errorf("seal: %w", err)
	}

	key, err := e.keyChain.DeriveKey(passphrase, salt)
	if err != nil {
		return models.EncryptedEnvelope{}, fmt.Errorf("seal: %w", err)
	}

	ciphertext, nonce, err := e.keyChain.Encrypt(plaintext, key)
	if err != nil {
		return models.EncryptedEnvelope{}, fmt.Errorf("seal: %w", err)
	}

	return models.EncryptedEnvelope{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Salt:       base64.StdEncoding.EncodeToString(salt),
	}, nil
}

// Open implements [EnvelopeService]. Every failure is reported as
// [ErrDecryptionFailed] with no further detail: distinguishing a malformed
// salt/nonce from a wrong passphrase would hand an attacker an oracle.
func (e *envelopeService) Open(envelope models.EncryptedEnvelope, passphrase string) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(envelope.Ciphertext)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	nonce, err := base64.StdEncoding.DecodeString(envelope.Nonce)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	salt, err := base64.StdEncoding.DecodeString(envelope.Salt)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	key, err := e.keyChain.DeriveKey(passphrase, salt)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := e.keyChain.Decrypt(ciphertext, key, nonce)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
