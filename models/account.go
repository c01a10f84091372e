package models

import "time"

// Account is the signed-in identity as seen by the client. Authentication
// itself is handled by the remote record store; the client keeps only the
// attributes it needs for display and for the passphrase-reset side channel.
type Account struct {
	// ID is the account identifier, matching the OwnerID on every record.
	ID string `json:"id"`

	// Email receives one-time codes during passphrase reset.
	Email string `json:"email"`

	// Name is the display name shown in the UI.
	Name string `json:"name"`

	// CreatedAt is the account creation timestamp reported by the server.
	CreatedAt time.Time `json:"created_at"`
}
