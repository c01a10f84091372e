package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a remote record store address in format [host]:[port] or full URL
//	-d local profile database path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-attempts failed unlock attempts before lockout
//	-lockout-duration lockout duration (e.g., "2h")
//	-session-timeout unlocked-section inactivity ceiling (e.g., "30m")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var maxAttempts int
	var lockoutDuration time.Duration
	var sessionTimeout time.Duration

	flag.StringVar(&serverAddress, "a", "", "Remote record store address")
	flag.StringVar(&databaseDSN, "d", "", "Local profile database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&maxAttempts, "max-attempts", 0, "Failed unlock attempts before lockout")
	flag.DurationVar(&lockoutDuration, "lockout-duration", 0, "Lockout duration (e.g., 2h)")
	flag.DurationVar(&sessionTimeout, "session-timeout", 0, "Unlocked-section inactivity ceiling (e.g., 30m)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Unlock: Unlock{
			MaxAttempts:     maxAttempts,
			LockoutDuration: lockoutDuration,
			SessionTimeout:  sessionTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
