package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theeman05/keypost/internal/domain/keys"
	"github.com/theeman05/keypost/internal/pkg/logger"
)

// keyFileSuffix is appended to every persisted key file name.
const keyFileSuffix = ".key"

// Role-derived file names for the local keypair.
const (
	publicKeyFileName  = "public" + keyFileSuffix
	privateKeyFileName = "private" + keyFileSuffix
)

// fileKeyStore implements the keys.KeyStore interface over JSON files in a
// working directory.
type fileKeyStore struct {
	dir    string
	logger logger.Logger
}

// NewFileKeyStore creates a key store rooted at dir. An empty dir means the
// current working directory.
func NewFileKeyStore(dir string, logger logger.Logger) (keys.KeyStore, error) {
	if dir == "" {
		dir = "."
	}
	return &fileKeyStore{
		dir:    dir,
		logger: logger,
	}, nil
}

// SavePublicKey persists the local public key as public.key.
func (s *fileKeyStore) SavePublicKey(key *keys.PublicKey) error {
	if err := key.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	return s.writeKeyFile(publicKeyFileName, key)
}

// SavePrivateKey persists the local private key as private.key.
func (s *fileKeyStore) SavePrivateKey(key *keys.PrivateKey) error {
	if err := key.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	return s.writeKeyFile(privateKeyFileName, key)
}

// LoadPublicKey reads the local public key from public.key.
func (s *fileKeyStore) LoadPublicKey() (*keys.PublicKey, error) {
	var key keys.PublicKey
	if err := s.readKeyFile(publicKeyFileName, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

// LoadPrivateKey reads the local private key from private.key.
func (s *fileKeyStore) LoadPrivateKey() (*keys.PrivateKey, error) {
	var key keys.PrivateKey
	if err := s.readKeyFile(privateKeyFileName, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

// SaveCorrespondentKey persists a fetched public key as <email>.key.
func (s *fileKeyStore) SaveCorrespondentKey(email string, key *keys.PublicKey) error {
	if err := key.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	return s.writeKeyFile(email+keyFileSuffix, key)
}

// LoadCorrespondentKey reads a correspondent's public key from <email>.key.
func (s *fileKeyStore) LoadCorrespondentKey(email string) (*keys.PublicKey, error) {
	var key keys.PublicKey
	if err := s.readKeyFile(email+keyFileSuffix, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

func (s *fileKeyStore) writeKeyFile(name string, key interface{}) error {
	data, err := json.Marshal(key)
	if err != nil {
		return fmt.Errorf("failed to marshal key: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}

	s.logger.Info("Saved key file ", path)
	return nil
}

func (s *fileKeyStore) readKeyFile(name string, key interface{}) error {
	data, err := os.ReadFile(filepath.Clean(filepath.Join(s.dir, name)))
	if err != nil {
		return fmt.Errorf("unable to read key file: %w", err)
	}

	if err := json.Unmarshal(data, key); err != nil {
		return fmt.Errorf("failed to parse key file %s: %w", name, err)
	}
	return nil
}
