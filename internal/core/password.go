package core

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"
)

// ReadPassword reads a password from the terminal without echoing.
// The caller is responsible for wiping the returned bytes.
func ReadPassword(prompt string) ([]byte, error) {
	fmt.Print(prompt)

	// Read password without echo
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // New line after password

	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}

	return password, nil
}

// GetPasswordFromEnv reads the password from HOSTPASS_PASSWORD
func GetPasswordFromEnv() []byte {
	password := os.Getenv("HOSTPASS_PASSWORD")
	if password == "" {
		return nil
	}
	// Return a copy to avoid issues when clearing the bytes
	result := make([]byte, len(password))
	copy(result, []byte(password))
	return result
}
