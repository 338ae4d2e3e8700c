package core

import (
	"github.com/live-labs/hostpass/internal/deviceid"
	"github.com/live-labs/hostpass/internal/logger"
)

// FallbackKeyMaterial is substituted when the device identity source
// fails. Reduced device-binding, but losing the ability to store any
// password would be worse. Kept verbatim for blob compatibility.
const FallbackKeyMaterial = "connectbot_default_master_key_2025"

// DeriveKeyMaterial combines the device identifier and the application
// identifier into key material for the key stretch. Deterministic for
// the same two inputs; never persisted, recomputed on every operation.
// If the provider fails, the documented fallback constant is used and
// a warning is logged so operators can spot degraded installs.
func DeriveKeyMaterial(provider deviceid.Provider, appID string, log *logger.Logger) []byte {
	id, err := provider.DeviceID()
	if err != nil {
		log.Warn().Err(err).Msg("device identity unavailable, using fallback key material")
		return []byte(FallbackKeyMaterial)
	}
	return []byte(id + appID)
}
