// Package adapter provides the transport layer for talking to the remote
// record store.
//
// The primary abstraction is [RemoteStore], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteStore]).
//
// The server only ever sees sealed envelopes and plaintext metadata; nothing
// in this package touches passphrases or decrypted content. Error values
// defined in errors.go are mapped from HTTP status codes by mapHTTPError so
// that callers can use [errors.Is] for transport-agnostic error handling
// (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-doc-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore defines transport-agnostic communication with the remote record
// store. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// All record operations are scoped server-side to the account behind the
// bearer token; no owner identifier travels in the request.
type RemoteStore interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success it stores the returned
	// bearer token via SetToken and returns the created account.
	Register(ctx context.Context, req models.RegisterRequest) (models.Account, error)

	// Login authenticates against the record store. On success it stores the
	// returned bearer token via SetToken and returns the account record.
	Login(ctx context.Context, req models.LoginRequest) (models.Account, error)

	// DeleteAccount permanently removes the signed-in account and every
	// record it owns. Requires a valid bearer token.
	DeleteAccount(ctx context.Context) error

	// ListNotes fetches all notes of the signed-in account, envelopes
	// included. Decryption happens entirely on the client.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// UploadNote stores a sealed note. The server treats the envelope as an
	// opaque triple.
	UploadNote(ctx context.Context, note models.Note) error

	// DeleteNote removes the note with the given record identifier.
	// Returns [ErrNotFound] (wrapped) when no such record exists.
	DeleteNote(ctx context.Context, noteID string) error

	// ListVaultItems fetches all vault items of the signed-in account.
	ListVaultItems(ctx context.Context) ([]models.VaultItem, error)

	// UploadVaultItem stores a sealed vault item.
	UploadVaultItem(ctx context.Context, item models.VaultItem) error

	// DeleteVaultItem removes the vault item with the given record
	// identifier. Returns [ErrNotFound] (wrapped) when no such record exists.
	DeleteVaultItem(ctx context.Context, itemID string) error

	// ListDocuments fetches document metadata for the signed-in account.
	// Envelopes are omitted from listings; full content is fetched per
	// document via GetDocument.
	ListDocuments(ctx context.Context) ([]models.Document, error)

	// GetDocument fetches one document including its envelope.
	// Returns [ErrNotFound] (wrapped) when no such record exists.
	GetDocument(ctx context.Context, documentID string) (models.Document, error)

	// UploadDocument stores a sealed document.
	UploadDocument(ctx context.Context, document models.Document) error

	// DeleteDocument removes the document with the given record identifier.
	// Returns [ErrNotFound] (wrapped) when no such record exists.
	DeleteDocument(ctx context.Context, documentID string) error
}
