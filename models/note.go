package models

import "time"

// Note is a secure note. The title is plaintext metadata; the body travels
// only inside the envelope and is decrypted with a passphrase the note's
// author chose when writing it.
type Note struct {
	// ID is the client-generated record identifier (UUID).
	ID string `json:"id"`

	// OwnerID identifies the account that owns the note.
	OwnerID string `json:"owner_id"`

	// Title is stored in the clear alongside the envelope.
	Title string `json:"title"`

	// Envelope holds the encrypted note body.
	Envelope EncryptedEnvelope `json:"envelope"`

	// CreatedAt is set by the client when the note is sealed.
	CreatedAt time.Time `json:"created_at"`
}
