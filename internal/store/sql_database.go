package store

import (
	"database/sql"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/migrations"
)

// DB wraps the raw database handle used by the local profile repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies all pending schema migrations to the profile database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
