// Package main is the entry point for the keypost-cli application.
// It initializes the root command and registers the key and message
// sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/theeman05/keypost/cmd/keypost-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "keypost-cli",
		Short: "Encrypted messaging CLI tool",
		Long: `keypost-cli exchanges encrypted messages through a shared key and
message store. Generate a keypair with keyGen, publish the public half
with sendKey, fetch a correspondent's key with getKey, then exchange
messages with sendMsg and getMsg.

Key files live in the current working directory. The store defaults to
` + "http://localhost:8080" + ` and can be overridden with the
KEYPOST_SERVER_URL environment variable.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	if err := commands.InitMessageCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize message commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
