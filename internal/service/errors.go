package service

import "errors"

var (
	// ErrNotSignedIn is returned when an operation needs a live session and
	// the context carries no account identifier.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrNotePassphraseTooShort is returned by NotesService.Create when the
	// per-note passphrase is shorter than the minimum.
	ErrNotePassphraseTooShort = errors.New("note passphrase is too short")

	// ErrEmptySecret is returned when a vault item is added with no secret
	// content.
	ErrEmptySecret = errors.New("secret content is required")

	// ErrEmptyDocument is returned when a document upload carries no file
	// content.
	ErrEmptyDocument = errors.New("document content is required")

	// ErrInvalidOTP is returned when the submitted one-time code does not
	// match the pending code for the address.
	ErrInvalidOTP = errors.New("invalid one-time code")

	// ErrOTPExpired is returned when the one-time code exists but its
	// validity window has passed.
	ErrOTPExpired = errors.New("one-time code has expired")

	// ErrInvalidResetToken is returned when a reset token is unknown,
	// already used, or expired.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)
