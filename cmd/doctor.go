package cmd

import (
	"context"
	"fmt"
)

// Doctor reports the health of the store backend and device identity
func Doctor(_ context.Context) {
	app, err := NewApp()
	if err != nil {
		HandleError(err)
	}
	defer app.Close()

	status, err := app.Codec.Status()
	if err != nil {
		HandleError(err)
	}

	fmt.Printf("Store backend:   %s\n", app.Config.Backend)
	if status.SaltPresent {
		fmt.Println("Salt:            present")
	} else {
		fmt.Println("Salt:            not yet created")
	}

	fmt.Printf("Device identity: %s\n", app.Config.DeviceIDSource)
	if status.Degraded {
		fmt.Printf("  ⚠ unavailable (%s)\n", status.DeviceIDError)
		fmt.Println("  Encryption will degrade to the fixed fallback key material.")
	} else {
		fmt.Println("  available")
	}
}
