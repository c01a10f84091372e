package models

import "time"

// RegisterRequest is the payload for creating a new account on the remote
// record store.
type RegisterRequest struct {
	// Email is the account email, also the sign-in identifier.
	Email string `json:"email"`

	// Name is the display name.
	Name string `json:"name"`

	// Password is the account password, sent over TLS and verified
	// server-side. It is unrelated to the section passphrases, which never
	// leave the device.
	Password string `json:"password"`
}

// DocumentUpload carries one file and its descriptive metadata into the
// documents service. Content holds the raw file bytes; the service
// compresses and seals them before anything leaves the device.
type DocumentUpload struct {
	Name        string
	FileName    string
	Type        DocumentType
	CustomLabel string
	Notes       string
	ExpiryDate  *time.Time
	MimeType    string
	Content     []byte
}

// LoginRequest is the payload for signing in to the remote record store.
type LoginRequest struct {
	// Email is the sign-in identifier.
	Email string `json:"email"`

	// Password is the account password.
	Password string `json:"password"`
}
