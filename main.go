package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/live-labs/hostpass/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "encrypt":
		runEncrypt(ctx, os.Args[2:])
	case "decrypt":
		runDecrypt(ctx, os.Args[2:])
	case "salt":
		runSalt(ctx, os.Args[2:])
	case "doctor":
		runDoctor(ctx, os.Args[2:])
	case "help", "-h", "--help":
		if len(os.Args) <= 2 {
			printUsage()
			return
		}
		printCommandHelp(os.Args[2])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runEncrypt(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Encrypt(ctx)
}

func runDecrypt(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("decrypt", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Decrypt(ctx, fs.Args())
}

func runSalt(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("salt", flag.ExitOnError)
	create := fs.Bool("create", false, "Create the salt now instead of on first encryption")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Salt(ctx, *create)
}

func runDoctor(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("doctor", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Doctor(ctx)
}

func printUsage() {
	fmt.Println("hostpass - Device-bound encryption for stored host passwords")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  hostpass <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  encrypt     Encrypt a password into a device-bound blob")
	fmt.Println("  decrypt     Decrypt a blob back into the password")
	fmt.Println("  salt        Show (or create) the device salt")
	fmt.Println("  doctor      Check store backend and device identity health")
	fmt.Println("  help        Show help for a command")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  HOSTPASS_PASSWORD   Password to encrypt (skips the prompt)")
	fmt.Println("  HOSTPASS_STORE      Salt database path (default: ~/.hostpass.db)")
	fmt.Println("  HOSTPASS_BACKEND    Salt store backend: bbolt or keyring")
	fmt.Println("  HOSTPASS_DEVICE_ID  Identity source: machine-id or keyring")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  hostpass encrypt                 # Prompt and print base64 blob")
	fmt.Println("  hostpass decrypt <blob>          # Print the original password")
	fmt.Println("  hostpass doctor                  # Check for degraded identity")
	fmt.Println()
	fmt.Println("Use 'hostpass help <command>' for more information about a command.")
}

func printCommandHelp(command string) {
	switch command {
	case "encrypt":
		fmt.Println("hostpass encrypt")
		fmt.Println()
		fmt.Println("Encrypts a password under a key derived from this device's")
		fmt.Println("identity and the stored salt, and prints the blob as base64.")
		fmt.Println("The password is read from HOSTPASS_PASSWORD or prompted without echo.")
		fmt.Println("An empty password encrypts to nothing by design.")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  hostpass encrypt")
		fmt.Println("  HOSTPASS_PASSWORD=hunter2 hostpass encrypt")
	case "decrypt":
		fmt.Println("hostpass decrypt [<blob>]")
		fmt.Println()
		fmt.Println("Decrypts a base64 blob produced by 'hostpass encrypt' and prints")
		fmt.Println("the password. Reads the blob from the argument or from stdin.")
		fmt.Println("Decryption uses the salt embedded in the blob, so blobs stay")
		fmt.Println("readable even after the stored salt changes.")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  hostpass decrypt AAECAwQFBgc...")
		fmt.Println("  hostpass encrypt | hostpass decrypt")
	case "salt":
		fmt.Println("hostpass salt [--create]")
		fmt.Println()
		fmt.Println("Shows whether the device salt has been committed to the store.")
		fmt.Println("With --create, generates and persists the salt immediately")
		fmt.Println("instead of waiting for the first encryption.")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  hostpass salt")
		fmt.Println("  hostpass salt --create")
	case "doctor":
		fmt.Println("hostpass doctor")
		fmt.Println()
		fmt.Println("Reports the store backend in use, whether the salt exists, and")
		fmt.Println("whether the device identity source is available. A degraded")
		fmt.Println("identity source means encryption falls back to a fixed constant")
		fmt.Println("with reduced device-binding.")
		fmt.Println()
		fmt.Println("Example:")
		fmt.Println("  hostpass doctor")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
	}
}
