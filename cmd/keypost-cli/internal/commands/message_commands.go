package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theeman05/keypost/internal/app"
	"github.com/theeman05/keypost/internal/domain/messages"
	"github.com/theeman05/keypost/internal/infrastructure/cryptography"
	"github.com/theeman05/keypost/internal/infrastructure/persistence"
	"github.com/theeman05/keypost/internal/pkg/logger"
)

// MessageCommandHandler encapsulates logic for handling message operations via CLI.
type MessageCommandHandler struct {
	messageService messages.MessageService
	logger         logger.Logger
}

// NewMessageCommandHandler initializes a new MessageCommandHandler with
// logging, the local key store and the remote store client.
func NewMessageCommandHandler() (*MessageCommandHandler, error) {
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

	cipher, err := cryptography.NewRSACipher(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	messageService, err := app.NewMessagingService(cryptography.NewKeyCodec(), cipher, store, directory, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	return &MessageCommandHandler{
		messageService: messageService,
		logger:         loggerInstance,
	}, nil
}

// SendMsgCmd encrypts a plaintext for an email's published key and uploads it
func (commandHandler *MessageCommandHandler) SendMsgCmd(cmd *cobra.Command, args []string) {
	email := args[0]
	plaintext := args[1]

	if err := commandHandler.messageService.Send(cmd.Context(), email, plaintext); err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	fmt.Println("Message written")
}

// GetMsgCmd downloads and decrypts the message stored for an email
func (commandHandler *MessageCommandHandler) GetMsgCmd(cmd *cobra.Command, args []string) {
	email := args[0]

	plaintext, err := commandHandler.messageService.Read(cmd.Context(), email)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}
	if plaintext == "" {
		fmt.Printf("No message found for %s\n", email)
		return
	}

	fmt.Println(plaintext)
}

// InitMessageCommands registers message-related commands
func InitMessageCommands(rootCmd *cobra.Command) error {
	handler, err := NewMessageCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create message command handler %w", err)
	}

	var sendMsgCmd = &cobra.Command{
		Use:   "sendMsg <email> <plaintext>",
		Short: "Encrypt and upload a message for an email",
		Long: `Encrypt the plaintext with the locally stored public key of the
email and upload it to the store, overwriting any previous message for
that identity. Run getKey for the email first.`,
		Args: cobra.ExactArgs(2),
		Run:  handler.SendMsgCmd,
	}
	rootCmd.AddCommand(sendMsgCmd)

	var getMsgCmd = &cobra.Command{
		Use:   "getMsg <email>",
		Short: "Download and decrypt the message stored for an email",
		Long: `Download the message stored for the email and decrypt it with the
local private key. The key must have been published for the email with
sendKey first.`,
		Args: cobra.ExactArgs(1),
		Run:  handler.GetMsgCmd,
	}
	rootCmd.AddCommand(getMsgCmd)

	return nil
}
