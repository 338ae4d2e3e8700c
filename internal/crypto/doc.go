// Package crypto provides the cipher engine for hostpass.
//
// Encryption uses AES-256-GCM with:
//   - 32-byte key stretched from device-bound key material via PBKDF2
//   - 12-byte random nonce per encryption, prepended to the ciphertext
//   - Authenticated encryption prevents undetected tampering
//
// Key stretching uses PBKDF2-HMAC-SHA256 parameterized by the caller's
// salt and iteration count. The key is rederived on every call from
// (salt, iterations, key material); nothing key-shaped is ever stored.
//
// Memory safety:
//   - Use ClearBytes() to zero sensitive data after use
//   - Derived keys are zeroed internally before Encrypt/Decrypt return
package crypto
