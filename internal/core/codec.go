package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/live-labs/hostpass/internal/crypto"
	"github.com/live-labs/hostpass/internal/deviceid"
	"github.com/live-labs/hostpass/internal/logger"
	"github.com/live-labs/hostpass/internal/saltstore"
)

// Iterations is the key-stretching round count. PKCS#5 recommends 1000.
// Fixed: every existing blob was produced with this figure and the key
// is always rederived, never stored.
const Iterations = 1000

var (
	// ErrMalformedBlob marks a blob too short to contain a salt.
	ErrMalformedBlob = errors.New("malformed blob: shorter than salt")

	// ErrPasswordUnreadable marks a blob that parses but cannot be
	// decrypted: wrong device, cleared keyring, or tampered bytes.
	// The caller should prompt the user to re-enter the password.
	ErrPasswordUnreadable = errors.New("password unreadable")
)

// Codec encrypts and decrypts stored host passwords. Both operations
// are stateless pure transforms; the only persistent state is the salt
// owned by the Manager.
type Codec struct {
	salts  *saltstore.Manager
	device deviceid.Provider
	appID  string
	log    *logger.Logger
}

// NewCodec wires a Codec from its collaborators.
func NewCodec(salts *saltstore.Manager, device deviceid.Provider, appID string, log *logger.Logger) *Codec {
	return &Codec{
		salts:  salts,
		device: device,
		appID:  appID,
		log:    log,
	}
}

// EncryptPassword encrypts a host password for storage and returns the
// blob salt || ciphertext. An empty password is a no-op returning
// (nil, nil), not an error. All intermediate buffers (salt copy,
// password bytes, ciphertext, key material) are zeroed on every exit
// path; the returned blob is a fresh copy.
func (c *Codec) EncryptPassword(ctx context.Context, password string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, nil
	}

	salt, err := c.salts.GetOrCreate()
	if err != nil {
		return nil, err
	}
	defer crypto.ClearBytes(salt)

	keyMaterial := DeriveKeyMaterial(c.device, c.appID, c.log)
	defer crypto.ClearBytes(keyMaterial)

	passwordBytes := []byte(password)
	defer crypto.ClearBytes(passwordBytes)

	ciphertext, err := crypto.Encrypt(salt, Iterations, keyMaterial, passwordBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt password: %w", err)
	}
	defer crypto.ClearBytes(ciphertext)

	// Combine salt and ciphertext
	blob := make([]byte, len(salt)+len(ciphertext))
	copy(blob, salt)
	copy(blob[len(salt):], ciphertext)

	return blob, nil
}

// DecryptPassword recovers the password from a blob produced by
// EncryptPassword. An empty blob is a no-op returning ("", nil). The
// blob's embedded salt is used, never the store's current one, so
// blobs stay readable even after the stored salt changes. Returns
// ErrMalformedBlob for a blob shorter than the salt and
// ErrPasswordUnreadable when decryption or authentication fails.
func (c *Codec) DecryptPassword(ctx context.Context, blob []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(blob) == 0 {
		return "", nil
	}
	if len(blob) < saltstore.SaltSize {
		return "", ErrMalformedBlob
	}

	// Work on copies so wiping never touches the caller's blob
	salt := append([]byte(nil), blob[:saltstore.SaltSize]...)
	defer crypto.ClearBytes(salt)
	ciphertext := append([]byte(nil), blob[saltstore.SaltSize:]...)
	defer crypto.ClearBytes(ciphertext)

	keyMaterial := DeriveKeyMaterial(c.device, c.appID, c.log)
	defer crypto.ClearBytes(keyMaterial)

	plaintext, err := crypto.Decrypt(salt, Iterations, keyMaterial, ciphertext)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidCiphertext) || errors.Is(err, crypto.ErrAuthFailed) {
			return "", fmt.Errorf("%w: %w", ErrPasswordUnreadable, err)
		}
		return "", fmt.Errorf("failed to decrypt password: %w", err)
	}
	defer crypto.ClearBytes(plaintext)

	// string() copies, so the wiped plaintext buffer is not the
	// value handed back
	return string(plaintext), nil
}
