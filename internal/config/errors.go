package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid remote adapter settings
	// (for example, missing address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidUnlockConfigs indicates invalid unlock tuning settings
	// (for example, zero max attempts or lockout duration).
	ErrInvalidUnlockConfigs = errors.New("invalid unlock configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero tick interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
