package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	KeySize   = 32 // AES-256 key size
	NonceSize = 12 // GCM nonce size
	TagSize   = 16 // GCM authentication tag size
)

var (
	ErrInvalidCiphertext = errors.New("invalid ciphertext")
	ErrAuthFailed        = errors.New("authentication failed")
)

// DeriveKey stretches keyMaterial into an AES-256 key using
// PBKDF2-HMAC-SHA256. The result is fully determined by
// (keyMaterial, salt, iterations); there is no separately stored key,
// so the same three inputs must always reproduce the same key.
// The caller owns the returned key and must ClearBytes it when done.
func DeriveKey(keyMaterial, salt []byte, iterations int) []byte {
	return pbkdf2.Key(keyMaterial, salt, iterations, KeySize, sha256.New)
}

// Encrypt stretches keyMaterial with (salt, iterations) and encrypts
// plaintext using AES-256-GCM. The returned ciphertext is
// nonce || sealed, with a fresh random nonce per call.
func Encrypt(salt []byte, iterations int, keyMaterial, plaintext []byte) ([]byte, error) {
	key := DeriveKey(keyMaterial, salt, iterations)
	defer ClearBytes(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Encrypt and authenticate
	sealed := gcm.Seal(nil, nonce, plaintext, nil)

	// Prepend nonce to ciphertext
	result := make([]byte, NonceSize+len(sealed))
	copy(result, nonce)
	copy(result[NonceSize:], sealed)

	return result, nil
}

// Decrypt is the exact inverse of Encrypt: it rederives the key from
// (salt, iterations, keyMaterial) and opens the nonce || sealed
// ciphertext. A too-short ciphertext yields ErrInvalidCiphertext; a
// failed authentication tag (wrong key material, wrong salt, or
// tampered bytes) yields ErrAuthFailed. Garbage is never returned
// silently.
func Decrypt(salt []byte, iterations int, keyMaterial, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < NonceSize+TagSize {
		return nil, ErrInvalidCiphertext
	}

	key := DeriveKey(keyMaterial, salt, iterations)
	defer ClearBytes(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := ciphertext[:NonceSize]
	sealed := ciphertext[NonceSize:]

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthFailed
	}

	return plaintext, nil
}

// ClearBytes securely clears a byte slice
func ClearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ConstantTimeCompare performs a constant-time comparison of two byte slices
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// GenerateRandom generates n random bytes
func GenerateRandom(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return b, nil
}
