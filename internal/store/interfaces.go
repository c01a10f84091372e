package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-doc-vault/models"
)

// SectionProfileRepository is the durable local state behind the unlock
// keeper: one row per section holding the reference passphrase, the failed
// attempt counter, and the lockout end-timestamp. The data is scoped to one
// user profile on one device; there is no multi-device synchronisation.
type SectionProfileRepository interface {
	// GetSectionProfiles returns every stored section profile. Sections
	// that have never been configured have no row.
	GetSectionProfiles(ctx context.Context) ([]models.SectionProfile, error)

	// SaveSectionProfile inserts or replaces the row for profile.Section.
	SaveSectionProfile(ctx context.Context, profile models.SectionProfile) error

	// DeleteSectionProfiles removes all section rows. Used on logout and
	// account deletion.
	DeleteSectionProfiles(ctx context.Context) error
}
