package saltstore

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"sync"

	"github.com/live-labs/hostpass/internal/logger"
)

const (
	// SaltSize is the fixed salt length in bytes. Blobs embed the salt
	// verbatim, so this must never change for existing data to remain
	// decryptable.
	SaltSize = 8

	// Namespace and key under which the salt is persisted. Kept
	// compatible with the Android preferences layout.
	Namespace = "connectbot_password_prefs"
	SaltKey   = "master_key_salt"
)

// Store is the persistent key-value collaborator that holds the salt.
// Implementations persist the base64-encoded salt under (Namespace,
// SaltKey) and report absence via the found flag, not an error.
type Store interface {
	// Get returns the value stored under key, or found=false if the
	// key has never been written.
	Get(key string) (value string, found bool, err error)

	// Set durably persists value under key.
	Set(key, value string) error
}

// Manager owns the salt lifecycle: lazy creation on first use,
// decode-and-return afterwards. The first-use check-then-write is
// guarded by a mutex so concurrent callers commit at most one salt.
type Manager struct {
	store Store
	log   *logger.Logger

	// Primary entropy source. Defaults to crypto/rand.Reader; if a
	// configured source fails mid-read the manager falls back to
	// crypto/rand.Reader rather than failing the operation.
	entropy io.Reader

	mu sync.Mutex
}

// NewManager creates a salt manager over the given store.
func NewManager(store Store, log *logger.Logger) *Manager {
	return &Manager{
		store:   store,
		log:     log,
		entropy: rand.Reader,
	}
}

// NewManagerWithEntropy is NewManager with an explicit primary entropy
// source, used by tests to exercise the fallback path.
func NewManagerWithEntropy(store Store, log *logger.Logger, entropy io.Reader) *Manager {
	return &Manager{
		store:   store,
		log:     log,
		entropy: entropy,
	}
}

// GetOrCreate returns the device salt, generating and persisting it on
// first use. The returned slice is a fresh copy owned by the caller.
// Store read/write failures are fatal for the call: without a durable
// salt nothing encrypted now would be recoverable later.
func (m *Manager) GetOrCreate() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	salt, err := m.lookup()
	if err != nil {
		return nil, err
	}
	if salt != nil {
		return salt, nil
	}

	salt = make([]byte, SaltSize)
	if _, err := io.ReadFull(m.entropy, salt); err != nil {
		// Degraded but non-fatal: fall back to the platform CSPRNG.
		m.log.Warn().Err(err).Msg("primary entropy source failed, falling back to crypto/rand")
		if _, err := io.ReadFull(rand.Reader, salt); err != nil {
			return nil, fmt.Errorf("failed to generate salt: %w", err)
		}
	}

	encoded := base64.StdEncoding.EncodeToString(salt)
	if err := m.store.Set(SaltKey, encoded); err != nil {
		return nil, fmt.Errorf("failed to persist salt: %w", err)
	}

	return salt, nil
}

// Peek returns the current salt without creating one. A nil salt with
// a nil error means no salt has been committed yet.
func (m *Manager) Peek() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookup()
}

// lookup decodes the stored salt, or returns nil if absent.
// Callers must hold m.mu.
func (m *Manager) lookup() ([]byte, error) {
	encoded, found, err := m.store.Get(SaltKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read salt: %w", err)
	}
	if !found {
		return nil, nil
	}

	salt, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("stored salt is not valid base64: %w", err)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("stored salt has length %d, want %d", len(salt), SaltSize)
	}
	return salt, nil
}
