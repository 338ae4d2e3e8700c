// Package saltstore manages the device-wide salt for hostpass.
//
// The salt is 8 random bytes, generated lazily on the first encryption
// and persisted base64-encoded under a fixed namespace/key:
//   - namespace: connectbot_password_prefs
//   - key:       master_key_salt
//
// Two real backends implement the Store interface:
//   - BoltStore: a BBolt file database (default)
//   - KeyringStore: the OS keyring
//
// MemoryStore is an in-memory fake for tests.
//
// There is deliberately no delete or rotate operation. Clearing the
// salt is the store owner's concern; blobs embed their own salt and
// remain decryptable even after the stored salt is gone.
package saltstore
