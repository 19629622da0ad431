// Package main is the entry point for the qrypted-cli application.
// It initializes the root command, registers the envelope sub-commands and
// executes the command-line interface.
package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	commands "github.com/cryptobuks1/qrypted/cmd/qrypted-cli/internal/commands"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "qrypted-cli",
		Short: "Password-based authenticated-encryption CLI tool",
		Long: `qrypted-cli is a command-line tool for password-based authenticated encryption.
It encrypts and decrypts files with any supported cipher suite ("Algorithm/Mode",
e.g. AES/GCM or Twofish/CBC), deriving keys from a password with Argon2id, scrypt
or PBKDF2. The IV and authentication value are stored in a JSON sidecar next to
the ciphertext.`,
	}

	if err := commands.InitEnvelopeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
