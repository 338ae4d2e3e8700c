package deviceid

import (
	"errors"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/zalando/go-keyring"
)

// ErrUnavailable is returned when no device identifier can be obtained
// from the underlying platform source.
var ErrUnavailable = errors.New("device identity unavailable")

// Provider supplies an opaque, reasonably stable per-device or
// per-install identifier. Implementations may fail; callers are
// expected to degrade rather than abort (see core.DeriveKeyMaterial).
type Provider interface {
	DeviceID() (string, error)
}

// machine-id locations, in preference order
var machineIDPaths = []string{
	"/etc/machine-id",
	"/var/lib/dbus/machine-id",
}

// MachineID reads the systemd/dbus machine-id file. It is stable
// across reboots but shared by every application on the host.
type MachineID struct{}

// DeviceID implements Provider
func (MachineID) DeviceID() (string, error) {
	for _, path := range machineIDPaths {
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		id := strings.TrimSpace(string(raw))
		if id != "" {
			return id, nil
		}
	}
	return "", ErrUnavailable
}

const installIDKey = "install_id"

// InstallID is a per-install identifier held in the OS keyring,
// comparable to Android's per-install ANDROID_ID. A fresh UUID is
// generated and committed on first use; every later call returns the
// same value. Losing the keyring entry invalidates all blobs encrypted
// under it, same as reinstalling the app would.
type InstallID struct {
	// Service name in the keyring. Empty means DefaultService.
	Service string
}

// DefaultService is the keyring service name used by InstallID.
const DefaultService = "hostpass"

// DeviceID implements Provider
func (p InstallID) DeviceID() (string, error) {
	service := p.Service
	if service == "" {
		service = DefaultService
	}

	id, err := keyring.Get(service, installIDKey)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, keyring.ErrNotFound) {
		return "", err
	}

	id = uuid.NewString()
	if err := keyring.Set(service, installIDKey, id); err != nil {
		return "", err
	}
	return id, nil
}

// Static is a fixed-identifier Provider for tests.
type Static struct {
	ID  string
	Err error
}

// DeviceID implements Provider
func (p Static) DeviceID() (string, error) {
	if p.Err != nil {
		return "", p.Err
	}
	return p.ID, nil
}
