package cmd

import (
	"context"
	"fmt"

	"github.com/live-labs/hostpass/internal/crypto"
	"github.com/live-labs/hostpass/internal/saltstore"
)

// Salt shows whether a device salt has been committed. With create set,
// it generates and persists one if absent, same as the first encryption
// would.
func Salt(_ context.Context, create bool) {
	app, err := NewApp()
	if err != nil {
		HandleError(err)
	}
	defer app.Close()

	if create {
		salt, err := app.Salts.GetOrCreate()
		if err != nil {
			HandleError(err)
		}
		crypto.ClearBytes(salt)
		fmt.Printf("✓ Salt present (%d bytes, backend: %s)\n", saltstore.SaltSize, app.Config.Backend)
		return
	}

	salt, err := app.Salts.Peek()
	if err != nil {
		HandleError(err)
	}
	if salt == nil {
		fmt.Println("No salt committed yet")
		fmt.Println("It will be created on the first encryption, or run 'hostpass salt --create'")
		return
	}
	crypto.ClearBytes(salt)
	fmt.Printf("Salt present (%d bytes, backend: %s)\n", saltstore.SaltSize, app.Config.Backend)
}
