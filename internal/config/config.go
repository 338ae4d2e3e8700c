// Package config holds the runtime configuration for hostpass,
// populated from environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Store backends
const (
	BackendBolt    = "bbolt"
	BackendKeyring = "keyring"
)

// Device identity sources
const (
	DeviceMachineID = "machine-id"
	DeviceKeyring   = "keyring"
)

// Config is the environment-driven configuration.
type Config struct {
	// StorePath is the BBolt database location. Empty means
	// ~/.hostpass.db.
	StorePath string `env:"HOSTPASS_STORE"`

	// Backend selects where the salt is persisted: bbolt or keyring.
	Backend string `env:"HOSTPASS_BACKEND" envDefault:"bbolt"`

	// AppID is the application identifier mixed into the key material.
	// Changing it invalidates every previously encrypted password.
	AppID string `env:"HOSTPASS_APP_ID" envDefault:"com.live-labs.hostpass"`

	// DeviceIDSource selects the device identity provider:
	// machine-id (host-wide) or keyring (per-install UUID).
	DeviceIDSource string `env:"HOSTPASS_DEVICE_ID" envDefault:"machine-id"`

	// LogLevel controls zerolog output (debug, info, warn, error).
	LogLevel string `env:"HOSTPASS_LOG_LEVEL" envDefault:"warn"`
}

// Load parses the environment into a Config and applies defaults that
// need runtime lookup (the home directory).
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.Backend != BackendBolt && cfg.Backend != BackendKeyring {
		return nil, fmt.Errorf("unknown backend %q (want %s or %s)", cfg.Backend, BackendBolt, BackendKeyring)
	}

	if cfg.DeviceIDSource != DeviceMachineID && cfg.DeviceIDSource != DeviceKeyring {
		return nil, fmt.Errorf("unknown device identity source %q (want %s or %s)", cfg.DeviceIDSource, DeviceMachineID, DeviceKeyring)
	}

	if cfg.StorePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate home directory: %w", err)
		}
		cfg.StorePath = filepath.Join(home, ".hostpass.db")
	}

	return cfg, nil
}
