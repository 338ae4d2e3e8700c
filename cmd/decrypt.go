package cmd

import (
	"bufio"
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

// Decrypt decodes a base64 blob (argument or stdin) and prints the password
func Decrypt(ctx context.Context, args []string) {
	var encoded string
	if len(args) > 0 {
		encoded = args[0]
	} else {
		// Read the blob from stdin
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintf(os.Stderr, "Error: no blob on stdin: %s\n", err)
			os.Exit(1)
		}
		encoded = strings.TrimSpace(line)
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: blob is not valid base64: %s\n", err)
		os.Exit(1)
	}

	app, err := NewApp()
	if err != nil {
		HandleError(err)
	}
	defer app.Close()

	password, err := app.Codec.DecryptPassword(ctx, blob)
	if err != nil {
		HandleError(err)
	}
	if password == "" {
		fmt.Println("(empty blob, nothing to decrypt)")
		return
	}

	fmt.Println(password)
}
