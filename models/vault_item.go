package models

import "time"

// VaultItem is one stored secret (PIN, password, card details). The name and
// type are plaintext metadata; the secret itself travels only inside the
// envelope, sealed with the vault section passphrase.
type VaultItem struct {
	// ID is the client-generated record identifier (UUID).
	ID string `json:"id"`

	// OwnerID identifies the account that owns the item.
	OwnerID string `json:"owner_id"`

	// Name labels the item ("HDFC debit card", "Gmail").
	Name string `json:"name"`

	// Type classifies the secret for presentation purposes.
	Type VaultItemType `json:"type"`

	// Envelope holds the encrypted secret.
	Envelope EncryptedEnvelope `json:"envelope"`

	// CreatedAt is set by the client when the item is sealed.
	CreatedAt time.Time `json:"created_at"`
}
