package saltstore

import (
	"path/filepath"
	"testing"

	"github.com/live-labs/hostpass/internal/logger"
)

func TestBoltOpenAndSetGet(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.hostpass.db")

	store, err := OpenBolt(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	// Absent key
	_, found, err := store.Get(SaltKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("fresh store should not contain the salt key")
	}

	// Set and read back
	if err := store.Set(SaltKey, "c2FsdHNhbHQ="); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, found, err := store.Get(SaltKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Fatal("value not found after Set")
	}
	if value != "c2FsdHNhbHQ=" {
		t.Errorf("value mismatch: got %q", value)
	}
}

func TestBoltPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.hostpass.db")

	store, err := OpenBolt(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	if err := store.Set(SaltKey, "c2FsdHNhbHQ="); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := OpenBolt(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	defer reopened.Close()

	value, found, err := reopened.Get(SaltKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found || value != "c2FsdHNhbHQ=" {
		t.Errorf("value lost across reopen: found=%v value=%q", found, value)
	}
}

func TestBoltManagerIntegration(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.hostpass.db")

	store, err := OpenBolt(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	m := NewManager(store, logger.Nop())
	first, err := m.GetOrCreate()
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	second, err := m.GetOrCreate()
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if string(first) != string(second) {
		t.Error("salt not stable over bbolt backend")
	}
}
