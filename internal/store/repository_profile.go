package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/models"
)

type sectionProfileRepository struct {
	*DB
	logger *logger.Logger
}

// NewSectionProfileRepository constructs the SQLite-backed
// [SectionProfileRepository] used by the unlock keeper.
func NewSectionProfileRepository(db *DB, logger *logger.Logger) SectionProfileRepository {
	return &sectionProfileRepository{DB: db, logger: logger}
}

func (r *sectionProfileRepository) GetSectionProfiles(ctx context.Context) ([]models.SectionProfile, error) {
	query, args, err := sq.
		Select("name", "passphrase", "failed_attempts", "lockout_until", "updated_at").
		From("section_profiles").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "sectionProfileRepository.GetSectionProfiles").
			Msg("failed to query section profiles")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var profiles []models.SectionProfile
	for rows.Next() {
		var (
			profile      models.SectionProfile
			lockoutUntil sql.NullInt64
			updatedAt    int64
		)
		if err := rows.Scan(&profile.Section, &profile.Passphrase, &profile.FailedAttempts, &lockoutUntil, &updatedAt); err != nil {
			r.logger.Err(err).
				Str("func", "sectionProfileRepository.GetSectionProfiles").
				Msg("failed to scan section profile row")
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}

		if lockoutUntil.Valid {
			t := time.UnixMilli(lockoutUntil.Int64)
			profile.LockoutUntil = &t
		}
		profile.UpdatedAt = time.UnixMilli(updatedAt)

		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return profiles, nil
}

func (r *sectionProfileRepository) SaveSectionProfile(ctx context.Context, profile models.SectionProfile) error {
	var lockoutUntil any
	if profile.LockoutUntil != nil {
		lockoutUntil = profile.LockoutUntil.UnixMilli()
	}

	updatedAt := profile.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	query, args, err := sq.
		Insert("section_profiles").
		Columns("name", "passphrase", "failed_attempts", "lockout_until", "updated_at").
		Values(profile.Section, profile.Passphrase, profile.FailedAttempts, lockoutUntil, updatedAt.UnixMilli()).
		Suffix(`ON CONFLICT(name) DO UPDATE SET
			passphrase      = excluded.passphrase,
			failed_attempts = excluded.failed_attempts,
			lockout_until   = excluded.lockout_until,
			updated_at      = excluded.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "sectionProfileRepository.SaveSectionProfile").
			Str("section", string(profile.Section)).
			Msg("failed to upsert section profile")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sectionProfileRepository) DeleteSectionProfiles(ctx context.Context) error {
	query, args, err := sq.Delete("section_profiles").ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "sectionProfileRepository.DeleteSectionProfiles").
			Msg("failed to delete section profiles")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}
