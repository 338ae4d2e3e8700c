// Package core provides the password codec for hostpass.
//
// Core operations:
//   - EncryptPassword: stored salt + device-bound key material →
//     blob (salt || ciphertext)
//   - DecryptPassword: blob's embedded salt + key material → password
//   - Status: salt presence and device-identity health, no mutation
//
// Both transforms are stateless; the one piece of persistent state is
// the 8-byte salt owned by saltstore.Manager. Key material is
// recomputed on every call from the device identifier and application
// identifier, degrading to a fixed constant when the identity source
// fails. Every sensitive intermediate buffer is zeroed via defer on
// all exit paths, error paths included.
package core
