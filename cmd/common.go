package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/live-labs/hostpass/internal/config"
	"github.com/live-labs/hostpass/internal/core"
	"github.com/live-labs/hostpass/internal/crypto"
	"github.com/live-labs/hostpass/internal/deviceid"
	"github.com/live-labs/hostpass/internal/logger"
	"github.com/live-labs/hostpass/internal/saltstore"
)

// App bundles the wired-up collaborators for one CLI invocation.
type App struct {
	Config *config.Config
	Log    *logger.Logger
	Salts  *saltstore.Manager
	Codec  *core.Codec

	closer func() error
}

// NewApp loads configuration and wires the store backend, device
// identity provider, salt manager and codec. Call Close when done.
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.LogLevel)

	var store saltstore.Store
	closer := func() error { return nil }
	switch cfg.Backend {
	case config.BackendKeyring:
		store = saltstore.NewKeyringStore()
	default:
		bolt, err := saltstore.OpenBolt(cfg.StorePath)
		if err != nil {
			return nil, err
		}
		store = bolt
		closer = bolt.Close
	}

	var device deviceid.Provider
	switch cfg.DeviceIDSource {
	case config.DeviceKeyring:
		device = deviceid.InstallID{}
	default:
		device = deviceid.MachineID{}
	}

	salts := saltstore.NewManager(store, log)

	return &App{
		Config: cfg,
		Log:    log,
		Salts:  salts,
		Codec:  core.NewCodec(salts, device, cfg.AppID, log),
		closer: closer,
	}, nil
}

// Close releases the store backend
func (a *App) Close() error {
	return a.closer()
}

// GetPassword retrieves the password from the environment or prompts.
// The caller is responsible for calling crypto.ClearBytes on the result.
func GetPassword(prompt string) ([]byte, error) {
	// Try environment variable first
	password := core.GetPasswordFromEnv()
	if password != nil {
		return password, nil
	}

	// Prompt user
	password, err := core.ReadPassword(prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}

	return password, nil
}

// GetPasswordOrExit is like GetPassword but exits on error
func GetPasswordOrExit(prompt string) []byte {
	password, err := GetPassword(prompt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	return password
}

// HandleError handles common errors consistently
func HandleError(err error) {
	switch {
	case errors.Is(err, core.ErrMalformedBlob):
		fmt.Fprintf(os.Stderr, "Error: blob is malformed (shorter than the %d-byte salt)\n", saltstore.SaltSize)
	case errors.Is(err, core.ErrPasswordUnreadable):
		fmt.Fprintf(os.Stderr, "Error: password is unreadable on this device\n")
		fmt.Fprintf(os.Stderr, "It was encrypted elsewhere, or the install identity changed. Re-enter and re-encrypt it.\n")
	case errors.Is(err, crypto.ErrAuthFailed):
		fmt.Fprintf(os.Stderr, "Error: authentication failed\n")
	default:
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	os.Exit(1)
}
