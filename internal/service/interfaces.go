// Package service implements the client-side business logic of the vault:
// sealing and opening records, section gating, session lifecycle, and the
// passphrase-reset side channel.
//
// Services sit between the UI, the crypto layer, and the remote record store.
// Record content is sealed before it leaves a service and opened only on
// explicit user request; the adapter below this layer never sees plaintext.
package service

import (
	"context"

	"github.com/MKhiriev/go-doc-vault/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/MKhiriev/go-doc-vault/internal/service SectionGate,EmailSender

// SectionGate is the slice of the unlock keeper the services depend on.
// Implemented by *unlock.Keeper.
type SectionGate interface {
	// SectionPassphrase returns the section passphrase for use as KDF input,
	// but only while the section is unlocked.
	SectionPassphrase(section models.Section) (string, error)

	// MarkActivity refreshes the section's idle-timeout clock.
	MarkActivity(section models.Section)

	// LockAll locks every section immediately.
	LockAll()

	// ClearAll erases all passphrase material and section profiles.
	ClearAll(ctx context.Context) error

	// ResetPassphrases replaces both section passphrases and clears lockouts.
	ResetPassphrases(ctx context.Context, documentsPassphrase, vaultPassphrase string) error
}

// EmailSender delivers one-time codes during passphrase reset.
type EmailSender interface {
	// SendOTP delivers code to the given address. The code is short-lived;
	// delivery failures should be reported, not retried silently.
	SendOTP(ctx context.Context, email, code string) error
}

// NotesService manages secure notes. Every note is sealed with its own
// passphrase, chosen by the author at write time; there is no section gate
// in front of notes.
type NotesService interface {
	// Create seals body with passphrase and uploads the resulting note.
	// The passphrase must be at least 8 characters. The owner is taken from
	// the context; returns ErrNotSignedIn when absent.
	Create(ctx context.Context, title, body, passphrase string) (models.Note, error)

	// List returns all notes of the signed-in account. Envelopes stay
	// sealed; only plaintext metadata is meaningful in the result.
	List(ctx context.Context) ([]models.Note, error)

	// Read opens the note's envelope with the supplied passphrase and
	// returns the plaintext body. A wrong passphrase or corrupted envelope
	// yields crypto.ErrDecryptionFailed with no further detail.
	Read(ctx context.Context, note models.Note, passphrase string) (string, error)

	// Delete removes the note from the record store.
	Delete(ctx context.Context, noteID string) error
}

// VaultService manages stored secrets (PINs, passwords, card details) behind
// the vault section gate. Every operation that touches secret material
// requires the vault section to be unlocked.
type VaultService interface {
	// Add seals secret with the vault section passphrase and uploads the
	// item. Returns unlock.ErrLocked while the section is locked.
	Add(ctx context.Context, name string, itemType models.VaultItemType, secret string) (models.VaultItem, error)

	// List returns all vault items of the signed-in account with envelopes
	// sealed. Listing metadata does not require the section to be unlocked.
	List(ctx context.Context) ([]models.VaultItem, error)

	// Reveal opens the item's envelope with the section passphrase and
	// returns the plaintext secret.
	Reveal(ctx context.Context, item models.VaultItem) (string, error)

	// CopyToClipboard reveals the secret and places it on the system
	// clipboard instead of returning it.
	CopyToClipboard(ctx context.Context, item models.VaultItem) error

	// Delete removes the vault item from the record store.
	Delete(ctx context.Context, itemID string) error
}

// DocumentsService manages uploaded document files behind the documents
// section gate. File content is zstd-compressed before sealing.
type DocumentsService interface {
	// Upload validates, compresses, and seals the file content with the
	// documents section passphrase, then stores the document remotely.
	// Returns unlock.ErrLocked while the section is locked.
	Upload(ctx context.Context, upload models.DocumentUpload) (models.Document, error)

	// List returns document metadata for the signed-in account. Envelopes
	// are not included; Download fetches full content per document.
	List(ctx context.Context) ([]models.Document, error)

	// Download fetches the document, opens its envelope with the section
	// passphrase, decompresses the content, and returns both the metadata
	// and the original file bytes.
	Download(ctx context.Context, documentID string) (models.Document, []byte, error)

	// Delete removes the document from the record store.
	Delete(ctx context.Context, documentID string) error
}

// SessionService owns the authenticated session: account sign-up and
// sign-in, token lifetime, and the teardown paths that wipe local passphrase
// state.
type SessionService interface {
	// SignUp registers a new account and establishes a session.
	SignUp(ctx context.Context, req models.RegisterRequest) (models.Account, error)

	// SignIn authenticates and establishes a session.
	SignIn(ctx context.Context, req models.LoginRequest) (models.Account, error)

	// Account returns the signed-in account, if any.
	Account() (models.Account, bool)

	// WithSession returns a child context carrying the signed-in account
	// identifier, or ErrNotSignedIn when there is no live session.
	WithSession(ctx context.Context) (context.Context, error)

	// SessionExpired reports whether the session token has expired (or is
	// about to, within a small leeway). An expired session requires a fresh
	// SignIn.
	SessionExpired() bool

	// HandleVisibilityHidden locks every section. Called when the
	// application window loses visibility.
	HandleVisibilityHidden()

	// Logout tears the session down: the token is dropped and all section
	// passphrases are wiped from memory and local storage.
	Logout(ctx context.Context) error

	// DeleteAccount removes the account and all its records server-side,
	// then performs the same local teardown as Logout.
	DeleteAccount(ctx context.Context) error
}

// ResetService is the forgot-passphrase escape hatch. It proves control of
// the account email with a one-time code before allowing both section
// passphrases to be replaced.
type ResetService interface {
	// RequestReset issues a 6-digit one-time code for email and sends it.
	// Any previous pending code for the same address is superseded.
	RequestReset(ctx context.Context, email string) error

	// ConfirmOTP checks the submitted code. On success the code is consumed
	// and a single-use reset token is returned. Returns ErrInvalidOTP or
	// ErrOTPExpired on failure.
	ConfirmOTP(ctx context.Context, email, code string) (string, error)

	// CompleteReset redeems the reset token and replaces both section
	// passphrases, clearing any lockouts.
	CompleteReset(ctx context.Context, resetToken, documentsPassphrase, vaultPassphrase string) error

	// Sweep drops expired codes and tokens and returns how many entries
	// were removed. Called periodically by a background worker.
	Sweep() int
}
