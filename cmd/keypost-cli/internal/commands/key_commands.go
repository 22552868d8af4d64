package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/theeman05/keypost/internal/app"
	"github.com/theeman05/keypost/internal/domain/keys"
	"github.com/theeman05/keypost/internal/infrastructure/cryptography"
	"github.com/theeman05/keypost/internal/infrastructure/persistence"
	"github.com/theeman05/keypost/internal/pkg/logger"
)

// KeyCommandHandler encapsulates logic for handling key operations via CLI.
type KeyCommandHandler struct {
	keyExchangeService keys.KeyExchangeService
	logger             logger.Logger
}

// NewKeyCommandHandler initializes a new KeyCommandHandler with logging, the
// local key store and the remote store client.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	directory, err := setupDirectory(loggerInstance)
	if err != nil {
		return nil, err
	}

	store, err := persistence.NewFileKeyStore(".", loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key store: %w", err)
	}

	source := cryptography.NewRandomIntegerSource()
	primes := cryptography.NewPrimeGenerator(source, cryptography.NewPrimalityTester(source), loggerInstance)
	generator, err := cryptography.NewKeypairGenerator(primes, source, cryptography.NewKeyCodec(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create keypair generator: %w", err)
	}

	keyExchangeService, err := app.NewKeyExchangeService(generator, store, directory, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key exchange service: %w", err)
	}

	return &KeyCommandHandler{
		keyExchangeService: keyExchangeService,
		logger:             loggerInstance,
	}, nil
}

// KeyGenCmd generates a keypair and stores both halves in the working directory
func (commandHandler *KeyCommandHandler) KeyGenCmd(cmd *cobra.Command, args []string) {
	bitSize, err := strconv.Atoi(args[0])
	if err != nil {
		commandHandler.logger.Error("keysize must be an integer: %v", err)
		return
	}

	if err := commandHandler.keyExchangeService.GenerateKeypair(bitSize); err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}
}

// SendKeyCmd publishes the local public key for an email
func (commandHandler *KeyCommandHandler) SendKeyCmd(cmd *cobra.Command, args []string) {
	email := args[0]

	if err := commandHandler.keyExchangeService.PublishKey(cmd.Context(), email); err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	fmt.Println("Key saved")
}

// GetKeyCmd downloads and stores the public key published for an email
func (commandHandler *KeyCommandHandler) GetKeyCmd(cmd *cobra.Command, args []string) {
	email := args[0]

	key, err := commandHandler.keyExchangeService.FetchKey(cmd.Context(), email)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}
	if key == nil {
		fmt.Printf("No key found for %s\n", email)
		return
	}
}

// InitKeyCommands registers key-related commands
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create key command handler %w", err)
	}

	var keyGenCmd = &cobra.Command{
		Use:   "keyGen <keysize>",
		Short: "Generate a keypair of the given bit size",
		Long: `Generate a public/private keypair whose modulus totals the given
number of bits and store both halves in the current directory as
public.key and private.key. The size must be a multiple of 8 and at
least 32 bits.`,
		Args: cobra.ExactArgs(1),
		Run:  handler.KeyGenCmd,
	}
	rootCmd.AddCommand(keyGenCmd)

	var sendKeyCmd = &cobra.Command{
		Use:   "sendKey <email>",
		Short: "Publish the local public key for an email",
		Args:  cobra.ExactArgs(1),
		Run:   handler.SendKeyCmd,
	}
	rootCmd.AddCommand(sendKeyCmd)

	var getKeyCmd = &cobra.Command{
		Use:   "getKey <email>",
		Short: "Download the public key published for an email",
		Args:  cobra.ExactArgs(1),
		Run:   handler.GetKeyCmd,
	}
	rootCmd.AddCommand(getKeyCmd)

	return nil
}
