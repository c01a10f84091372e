package models

import "time"

// Document is one uploaded document file. All descriptive fields are
// plaintext metadata; the file content is zstd-compressed, then sealed into
// the envelope with the documents section passphrase.
type Document struct {
	// ID is the client-generated record identifier (UUID).
	ID string `json:"id"`

	// OwnerID identifies the account that owns the document.
	OwnerID string `json:"owner_id"`

	// Name is the user-facing display name.
	Name string `json:"name"`

	// FileName is the original file name at upload time.
	FileName string `json:"file_name"`

	// Type classifies the document.
	Type DocumentType `json:"type"`

	// CustomLabel names the document when Type is DocumentCustom.
	CustomLabel string `json:"custom_label,omitempty"`

	// Envelope holds the encrypted (compressed) file content.
	Envelope EncryptedEnvelope `json:"envelope"`

	// Notes is optional plaintext commentary shown in listings.
	Notes string `json:"notes,omitempty"`

	// ExpiryDate is the document's own expiry (passport, licence), if any.
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`

	// MimeType is the declared content type of the original file.
	MimeType string `json:"mime_type"`

	// Size is the original (uncompressed, unencrypted) file size in bytes.
	Size int64 `json:"size"`

	// UploadedAt is set by the client when the document is sealed.
	UploadedAt time.Time `json:"uploaded_at"`
}
