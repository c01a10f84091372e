package models

import "time"

// Section identifies a passphrase-gated area of the vault application.
// Each section has its own passphrase and its own unlock state.
type Section string

const (
	// SectionDocuments gates uploaded document files and secure notes.
	SectionDocuments Section = "documents"

	// SectionVault gates stored secrets: PINs, passwords, card details.
	SectionVault Section = "vault"
)

// Sections lists every known section in a stable order.
var Sections = []Section{SectionDocuments, SectionVault}

// Valid reports whether s is one of the known sections.
func (s Section) Valid() bool {
	return s == SectionDocuments || s == SectionVault
}

// SectionProfile is the durable per-section state kept in the local profile
// database. The passphrase is stored in the clear on purpose: the section
// gate protects against casual shoulder-surfing and device sharing, not
// against an attacker who already controls the device.
type SectionProfile struct {
	// Section names the section this profile belongs to.
	Section Section

	// Passphrase is the reference passphrase unlock attempts are compared
	// against. Empty means the section has not been configured yet.
	Passphrase string

	// FailedAttempts counts consecutive wrong unlock attempts since the
	// last success or lockout expiry.
	FailedAttempts int

	// LockoutUntil is the instant the active lockout ends. Nil when the
	// section is not locked out.
	LockoutUntil *time.Time

	// UpdatedAt records the last mutation of this profile row.
	UpdatedAt time.Time
}

// Configured reports whether a passphrase has been established for the section.
func (p SectionProfile) Configured() bool {
	return p.Passphrase != ""
}
