package config

import "strings"

// validate checks that the final merged [StructuredConfig] is usable
// before the application starts.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Unlock.MaxAttempts <= 0 || cfg.Unlock.LockoutDuration <= 0 || cfg.Unlock.SessionTimeout <= 0 {
		return ErrInvalidUnlockConfigs
	}

	if cfg.Workers.AutoLockInterval <= 0 || cfg.Workers.OTPSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
