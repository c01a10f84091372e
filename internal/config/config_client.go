package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the application version string.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the remote record store endpoint used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the local profile database.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientUnlock groups the unlock state machine tuning parameters.
type ClientUnlock struct {
	// MaxAttempts is the failed-attempt ceiling before lockout.
	MaxAttempts int
	// LockoutDuration is how long a lockout lasts.
	LockoutDuration time.Duration
	// SessionTimeout is the unlocked-section inactivity ceiling.
	SessionTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// AutoLockInterval defines how often the idle-timeout job runs.
	AutoLockInterval time.Duration
	// OTPSweepInterval defines how often the OTP store is swept.
	OTPSweepInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Unlock contains the unlock state machine tuning.
	Unlock ClientUnlock
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Unlock: ClientUnlock{
			MaxAttempts:     cfg.Unlock.MaxAttempts,
			LockoutDuration: cfg.Unlock.LockoutDuration,
			SessionTimeout:  cfg.Unlock.SessionTimeout,
		},
		Workers: ClientWorkers{
			AutoLockInterval: cfg.Workers.AutoLockInterval,
			OTPSweepInterval: cfg.Workers.OTPSweepInterval,
		},
	}

	return clientCfg, clientCfg.validate()
}
