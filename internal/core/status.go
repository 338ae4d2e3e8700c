package core

// Status reports the health of the codec's collaborators without
// performing any encryption or mutating the store.
type Status struct {
	// SaltPresent reports whether a salt has been committed to the
	// store. False on a fresh install; the first encryption creates it.
	SaltPresent bool

	// Degraded reports that the device identity source is failing and
	// encryption would fall back to the documented constant.
	Degraded bool

	// DeviceIDError holds the identity source failure, if any.
	DeviceIDError string
}

// Status inspects the salt store and the device identity source.
// Store read failures are returned; identity failures are reported in
// the status, matching the degrade-not-fail policy of the codec.
func (c *Codec) Status() (*Status, error) {
	salt, err := c.salts.Peek()
	if err != nil {
		return nil, err
	}

	status := &Status{SaltPresent: salt != nil}

	if _, err := c.device.DeviceID(); err != nil {
		status.Degraded = true
		status.DeviceIDError = err.Error()
	}

	return status, nil
}
