package deviceid

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/zalando/go-keyring"
)

func TestStatic(t *testing.T) {
	id, err := Static{ID: "device-1"}.DeviceID()
	if err != nil {
		t.Fatalf("Static failed: %v", err)
	}
	if id != "device-1" {
		t.Errorf("id = %q, want device-1", id)
	}

	boom := errors.New("no identity")
	if _, err := (Static{Err: boom}).DeviceID(); !errors.Is(err, boom) {
		t.Errorf("expected configured error, got %v", err)
	}
}

func TestMachineID(t *testing.T) {
	id, err := MachineID{}.DeviceID()
	if errors.Is(err, ErrUnavailable) {
		t.Skip("no machine-id file on this host")
	}
	if err != nil {
		t.Fatalf("MachineID failed: %v", err)
	}
	if id == "" {
		t.Error("empty machine id")
	}

	// Stable across calls
	again, err := MachineID{}.DeviceID()
	if err != nil || again != id {
		t.Errorf("machine id unstable: %q vs %q (err %v)", id, again, err)
	}
}

func TestInstallIDStable(t *testing.T) {
	keyring.MockInit()
	provider := InstallID{Service: "hostpass-test"}

	first, err := provider.DeviceID()
	if err != nil {
		t.Fatalf("InstallID failed: %v", err)
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Errorf("install id is not a UUID: %q", first)
	}

	second, err := provider.DeviceID()
	if err != nil {
		t.Fatalf("InstallID failed: %v", err)
	}
	if first != second {
		t.Errorf("install id regenerated: %q vs %q", first, second)
	}
}
