package saltstore

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// KeyringStore persists the salt in the OS keyring (macOS Keychain,
// Linux Secret Service, Windows Credential Manager) instead of a file
// database. The Namespace constant doubles as the keyring service name.
type KeyringStore struct{}

// NewKeyringStore creates a keyring-backed Store
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{}
}

// Get implements Store
func (s *KeyringStore) Get(key string) (string, bool, error) {
	value, err := keyring.Get(Namespace, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set implements Store
func (s *KeyringStore) Set(key, value string) error {
	return keyring.Set(Namespace, key, value)
}
