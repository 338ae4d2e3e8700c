package cmd

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/live-labs/hostpass/internal/crypto"
)

// Encrypt reads a password and prints the base64-encoded blob
func Encrypt(ctx context.Context) {
	app, err := NewApp()
	if err != nil {
		HandleError(err)
	}
	defer app.Close()

	password := GetPasswordOrExit("Enter password: ")
	defer crypto.ClearBytes(password)

	blob, err := app.Codec.EncryptPassword(ctx, string(password))
	if err != nil {
		HandleError(err)
	}
	if blob == nil {
		fmt.Println("(empty password, nothing to encrypt)")
		return
	}

	fmt.Println(base64.StdEncoding.EncodeToString(blob))
}
