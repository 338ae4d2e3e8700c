// Package deviceid abstracts the platform device-identity source.
//
// Providers:
//   - MachineID: systemd/dbus machine-id files (host-wide, Linux)
//   - InstallID: per-install UUID persisted in the OS keyring
//   - Static: fixed identifier for tests
//
// All providers may fail. The key deriver treats a failure as a
// degrade signal, substituting a documented fallback constant instead
// of refusing to operate.
package deviceid
