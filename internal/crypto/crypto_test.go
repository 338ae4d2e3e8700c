package crypto

import (
	"bytes"
	"errors"
	"testing"
)

const testIterations = 1000

func TestEncryptDecryptRoundTrip(t *testing.T) {
	salt := []byte("saltsalt")
	keyMaterial := []byte("device-id-app-id")
	plaintext := []byte("hunter2")

	ciphertext, err := Encrypt(salt, testIterations, keyMaterial, plaintext)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	if len(ciphertext) < NonceSize+TagSize {
		t.Fatalf("ciphertext too short: %d bytes", len(ciphertext))
	}

	decrypted, err := Decrypt(salt, testIterations, keyMaterial, ciphertext)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}

	if !bytes.Equal(decrypted, plaintext) {
		t.Errorf("round trip mismatch: got %q, want %q", decrypted, plaintext)
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	salt := []byte("saltsalt")
	keyMaterial := []byte("device-id-app-id")

	k1 := DeriveKey(keyMaterial, salt, testIterations)
	k2 := DeriveKey(keyMaterial, salt, testIterations)

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Error("same inputs must derive the same key")
	}

	k3 := DeriveKey(keyMaterial, []byte("othrsalt"), testIterations)
	if bytes.Equal(k1, k3) {
		t.Error("different salt must derive a different key")
	}
}

func TestDecryptWrongKeyMaterial(t *testing.T) {
	salt := []byte("saltsalt")

	ciphertext, err := Encrypt(salt, testIterations, []byte("right"), []byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	_, err = Decrypt(salt, testIterations, []byte("wrong"), ciphertext)
	if !errors.Is(err, ErrAuthFailed) {
		t.Errorf("expected ErrAuthFailed, got %v", err)
	}
}

func TestDecryptTampered(t *testing.T) {
	salt := []byte("saltsalt")
	keyMaterial := []byte("device-id-app-id")

	ciphertext, err := Encrypt(salt, testIterations, keyMaterial, []byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	// Flip one bit in every position in turn; each must be detected
	for i := range ciphertext {
		tampered := append([]byte(nil), ciphertext...)
		tampered[i] ^= 0x01

		if _, err := Decrypt(salt, testIterations, keyMaterial, tampered); !errors.Is(err, ErrAuthFailed) {
			t.Fatalf("bit flip at %d not detected, err = %v", i, err)
		}
	}
}

func TestDecryptTooShort(t *testing.T) {
	salt := []byte("saltsalt")
	keyMaterial := []byte("device-id-app-id")

	short := make([]byte, NonceSize+TagSize-1)
	if _, err := Decrypt(salt, testIterations, keyMaterial, short); !errors.Is(err, ErrInvalidCiphertext) {
		t.Errorf("expected ErrInvalidCiphertext, got %v", err)
	}
}

func TestEncryptFreshNonce(t *testing.T) {
	salt := []byte("saltsalt")
	keyMaterial := []byte("device-id-app-id")
	plaintext := []byte("secret")

	c1, err := Encrypt(salt, testIterations, keyMaterial, plaintext)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	c2, err := Encrypt(salt, testIterations, keyMaterial, plaintext)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	if bytes.Equal(c1[:NonceSize], c2[:NonceSize]) {
		t.Error("two encryptions reused a nonce")
	}
	if bytes.Equal(c1, c2) {
		t.Error("two encryptions produced identical ciphertexts")
	}
}

func TestClearBytes(t *testing.T) {
	b := []byte("sensitive")
	ClearBytes(b)

	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not cleared: %x", i, v)
		}
	}
}

func TestGenerateRandom(t *testing.T) {
	a, err := GenerateRandom(8)
	if err != nil {
		t.Fatalf("GenerateRandom failed: %v", err)
	}
	b, err := GenerateRandom(8)
	if err != nil {
		t.Fatalf("GenerateRandom failed: %v", err)
	}

	if len(a) != 8 || len(b) != 8 {
		t.Fatalf("wrong lengths: %d, %d", len(a), len(b))
	}
	if bytes.Equal(a, b) {
		t.Error("two random reads returned identical bytes")
	}
}
