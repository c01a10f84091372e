package models

// EncryptedEnvelope is the transport encoding of one encrypted artifact.
// Each field is base64 (standard encoding) and stored independently so the
// persistence layer can keep them as separate inspectable columns/fields
// instead of one opaque blob.
//
// An envelope is immutable once produced. Decryption never mutates it.
// The nonce and salt are freshly random per encryption call; an envelope
// never shares either value with another envelope.
type EncryptedEnvelope struct {
	// Ciphertext is the AES-GCM output including the authentication tag.
	Ciphertext string `json:"ciphertext"`

	// Nonce is the 12-byte GCM nonce used for this envelope only.
	Nonce string `json:"nonce"`

	// Salt is the 16-byte KDF salt used to derive this envelope's key.
	Salt string `json:"salt"`
}

// IsZero reports whether the envelope carries no data at all.
func (e EncryptedEnvelope) IsZero() bool {
	return e.Ciphertext == "" && e.Nonce == "" && e.Salt == ""
}
