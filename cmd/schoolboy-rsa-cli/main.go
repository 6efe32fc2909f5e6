// Package main is the entry point for the schoolboy-rsa-cli application.
// It registers the key generation, cipher and demo sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pbsphp/schoolboy-rsa/cmd/schoolboy-rsa-cli/internal/commands"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "schoolboy-rsa-cli",
		Short: "Textbook RSA demonstration tool",
		Long: `schoolboy-rsa-cli generates textbook RSA key pairs and encrypts or decrypts
short texts with them. Keys are "<exponent> <modulus>" strings in base 36.

There is no padding: the scheme is deterministic and malleable and must not be
used to protect real data.

Settings are read from --config (YAML) and SCHOOLBOY_RSA_* environment variables,
e.g. SCHOOLBOY_RSA_RSA_SEED_SOURCE=crypto.`,
		SilenceUsage: true,
	}

	commands.InitGlobalFlags(rootCmd)

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	if err := commands.InitDemoCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize demo commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
