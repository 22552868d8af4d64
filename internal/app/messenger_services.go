package app

import (
	"context"
	"encoding/base64"
	"fmt"
	"math/big"
	"time"

	"github.com/theeman05/keypost/internal/domain/keys"
	"github.com/theeman05/keypost/internal/domain/messages"
	"github.com/theeman05/keypost/internal/pkg/logger"
)

// keyExchangeService implements the keys.KeyExchangeService interface
type keyExchangeService struct {
	generator keys.KeypairGenerator
	store     keys.KeyStore
	directory keys.RemoteKeyDirectory
	logger    logger.Logger
}

// NewKeyExchangeService creates a new keyExchangeService instance
func NewKeyExchangeService(
	generator keys.KeypairGenerator,
	store keys.KeyStore,
	directory keys.RemoteKeyDirectory,
	logger logger.Logger,
) (keys.KeyExchangeService, error) {
	return &keyExchangeService{
		generator: generator,
		store:     store,
		directory: directory,
		logger:    logger,
	}, nil
}

// GenerateKeypair creates a fresh keypair and persists both halves,
// replacing any previously stored pair.
func (s *keyExchangeService) GenerateKeypair(bitSize int) error {
	publicKey, privateKey, err := s.generator.GenerateKeypair(bitSize)
	if err != nil {
		return err
	}

	if err := s.store.SavePublicKey(publicKey); err != nil {
		return fmt.Errorf("failed to save public key: %w", err)
	}
	if err := s.store.SavePrivateKey(privateKey); err != nil {
		return fmt.Errorf("failed to save private key: %w", err)
	}

	s.logger.Info("Keypair generated and stored")
	return nil
}

// PublishKey binds the local public key to email, uploads it to the store,
// and records email in the private key's correspondent set.
func (s *keyExchangeService) PublishKey(ctx context.Context, email string) error {
	publicKey, err := s.store.LoadPublicKey()
	if err != nil {
		return fmt.Errorf("no local public key, generate a keypair first: %w", err)
	}
	privateKey, err := s.store.LoadPrivateKey()
	if err != nil {
		return fmt.Errorf("no local private key, generate a keypair first: %w", err)
	}

	publicKey.Email = email
	if err := s.directory.PutKey(ctx, email, publicKey); err != nil {
		return fmt.Errorf("failed to publish key: %w", err)
	}
	if err := s.store.SavePublicKey(publicKey); err != nil {
		return fmt.Errorf("failed to save rebound public key: %w", err)
	}

	if privateKey.AddCorrespondent(email) {
		if err := s.store.SavePrivateKey(privateKey); err != nil {
			return fmt.Errorf("failed to record correspondent: %w", err)
		}
	}

	s.logger.Info("Published public key for ", email)
	return nil
}

// FetchKey downloads the public key published for email and stores it
// locally as <email>.key. It returns (nil, nil) when none is published.
func (s *keyExchangeService) FetchKey(ctx context.Context, email string) (*keys.PublicKey, error) {
	key, err := s.directory.GetKey(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch key: %w", err)
	}
	if key == nil {
		s.logger.Info("No public key published for ", email)
		return nil, nil
	}

	if err := s.store.SaveCorrespondentKey(email, key); err != nil {
		return nil, fmt.Errorf("failed to save fetched key: %w", err)
	}

	s.logger.Info("Fetched public key for ", email)
	return key, nil
}

// messagingService implements the messages.MessageService interface
type messagingService struct {
	codec     keys.KeyCodec
	cipher    keys.Cipher
	store     keys.KeyStore
	directory messages.RemoteMessageDirectory
	logger    logger.Logger
}

// NewMessagingService creates a new messagingService instance
func NewMessagingService(
	codec keys.KeyCodec,
	cipher keys.Cipher,
	store keys.KeyStore,
	directory messages.RemoteMessageDirectory,
	logger logger.Logger,
) (messages.MessageService, error) {
	return &messagingService{
		codec:     codec,
		cipher:    cipher,
		store:     store,
		directory: directory,
		logger:    logger,
	}, nil
}

// Send encrypts plaintext with the locally stored public key of email and
// uploads the message, overwriting any previous one for that identity.
func (s *messagingService) Send(ctx context.Context, email string, plaintext string) error {
	key, err := s.store.LoadCorrespondentKey(email)
	if err != nil {
		return fmt.Errorf("no public key stored for %s, fetch it first: %w", email, err)
	}

	exponent, modulus, err := s.codec.Decode(key.Key)
	if err != nil {
		return err
	}

	messageBytes := []byte(plaintext)
	if new(big.Int).SetBytes(messageBytes).Cmp(modulus) >= 0 {
		// Textbook RSA cannot represent a message this long under this
		// modulus; the recipient will not recover the original bytes.
		s.logger.Warn("plaintext exceeds the modulus of ", email, "'s key and will not decrypt intact")
	}

	ciphertext, err := s.cipher.Encrypt(messageBytes, exponent, modulus)
	if err != nil {
		return fmt.Errorf("encryption failed: %w", err)
	}

	message := &messages.Message{
		Email:           email,
		Content:         base64.StdEncoding.EncodeToString(ciphertext),
		DateTimeCreated: time.Now().UTC(),
	}
	if err := s.directory.PutMessage(ctx, email, message); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	s.logger.Info("Sent message for ", email)
	return nil
}

// Read downloads the message stored for email and decrypts it with the
// local private key. The private key must have been published for email
// via PublishKey. It returns ("", nil) when no message is stored.
func (s *messagingService) Read(ctx context.Context, email string) (string, error) {
	privateKey, err := s.store.LoadPrivateKey()
	if err != nil {
		return "", fmt.Errorf("no local private key, generate a keypair first: %w", err)
	}
	if !privateKey.HasCorrespondent(email) {
		return "", fmt.Errorf("no key published for %s, publish one first", email)
	}

	message, err := s.directory.GetMessage(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to fetch message: %w", err)
	}
	if message == nil {
		s.logger.Info("No message stored for ", email)
		return "", nil
	}

	ciphertext, err := base64.StdEncoding.DecodeString(message.Content)
	if err != nil {
		return "", fmt.Errorf("message content is not valid base64: %w", err)
	}

	exponent, modulus, err := s.codec.Decode(privateKey.Key)
	if err != nil {
		return "", err
	}

	plaintext, err := s.cipher.Decrypt(ciphertext, exponent, modulus)
	if err != nil {
		return "", fmt.Errorf("decryption failed: %w", err)
	}

	s.logger.Info("Read message for ", email)
	return string(plaintext), nil
}
