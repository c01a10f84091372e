package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-doc-vault client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local profile database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote record-store address and timeout settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Unlock holds the section unlock and lockout tuning parameters.
	Unlock Unlock `envPrefix:"UNLOCK_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the local profile database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local profile database.
type DB struct {
	// DSN is the SQLite file path of the profile database.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds network settings for the remote record-store collaborator.
type Adapter struct {
	// HTTPAddress is the base URL of the remote record store,
	// in "host:port" or full URL format.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Unlock holds the tuning parameters of the section unlock state machine.
type Unlock struct {
	// MaxAttempts is the number of consecutive failed unlock attempts that
	// triggers a lockout.
	// Env: UNLOCK_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// LockoutDuration is how long a section stays locked out after
	// MaxAttempts failures (e.g. "2h").
	// Env: UNLOCK_LOCKOUT_DURATION
	LockoutDuration time.Duration `env:"LOCKOUT_DURATION"`

	// SessionTimeout is the inactivity ceiling after which an unlocked
	// section re-locks on its own (e.g. "30m").
	// Env: UNLOCK_SESSION_TIMEOUT
	SessionTimeout time.Duration `env:"SESSION_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// AutoLockInterval is how often the idle-timeout enforcement job runs.
	// Env: WORKERS_AUTOLOCK_INTERVAL
	AutoLockInterval time.Duration `env:"AUTOLOCK_INTERVAL"`

	// OTPSweepInterval is how often expired one-time codes are swept from
	// the in-memory reset store.
	// Env: WORKERS_OTP_SWEEP_INTERVAL
	OTPSweepInterval time.Duration `env:"OTP_SWEEP_INTERVAL"`
}

// Built-in defaults applied when no other source sets a value. The unlock
// numbers mirror the product behaviour: three attempts, two-hour lockout,
// thirty-minute idle ceiling.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "doc-vault.db"}},
		Adapter: Adapter{RequestTimeout: 30 * time.Second},
		Unlock: Unlock{
			MaxAttempts:     3,
			LockoutDuration: 2 * time.Hour,
			SessionTimeout:  30 * time.Minute,
		},
		Workers: Workers{
			AutoLockInterval: time.Minute,
			OTPSweepInterval: time.Minute,
		},
	}
}

// GetStructuredConfig assembles the merged configuration from all sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
