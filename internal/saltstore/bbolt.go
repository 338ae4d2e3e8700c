package saltstore

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// Bucket holding the password preference entries
var prefsBucket = []byte(Namespace)

// BoltStore is the default Store backend: a single-file BBolt database.
// BBolt provides ACID transactions and file locking, so check-then-put
// sequences inside one Update transaction are atomic across processes.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens or creates the salt database at path
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(prefsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket %s: %w", prefsBucket, err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the database
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Get implements Store
func (s *BoltStore) Get(key string) (string, bool, error) {
	var value string
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(prefsBucket)
		if bucket == nil {
			return fmt.Errorf("bucket %s not found", prefsBucket)
		}
		raw := bucket.Get([]byte(key))
		if raw == nil {
			return nil
		}
		// Copy out: the slice is only valid during the transaction
		value = string(raw)
		found = true
		return nil
	})
	return value, found, err
}

// Set implements Store
func (s *BoltStore) Set(key, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(prefsBucket)
		if bucket == nil {
			return fmt.Errorf("bucket %s not found", prefsBucket)
		}
		return bucket.Put([]byte(key), []byte(value))
	})
}
