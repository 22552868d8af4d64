//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/theeman05/keypost/internal/domain/keys"
	"github.com/theeman05/keypost/internal/domain/messages"
)

// MockKeypairGenerator is a mock implementation of KeypairGenerator
type MockKeypairGenerator struct {
	mock.Mock
}

func (m *MockKeypairGenerator) GenerateKeypair(bitSize int) (*keys.PublicKey, *keys.PrivateKey, error) {
	args := m.Called(bitSize)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*keys.PublicKey), args.Get(1).(*keys.PrivateKey), args.Error(2)
}

// MockKeyStore is a mock implementation of KeyStore
type MockKeyStore struct {
	mock.Mock
}

func (m *MockKeyStore) SavePublicKey(key *keys.PublicKey) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockKeyStore) SavePrivateKey(key *keys.PrivateKey) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockKeyStore) LoadPublicKey() (*keys.PublicKey, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.PublicKey), args.Error(1)
}

func (m *MockKeyStore) LoadPrivateKey() (*keys.PrivateKey, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.PrivateKey), args.Error(1)
}

func (m *MockKeyStore) SaveCorrespondentKey(email string, key *keys.PublicKey) error {
	args := m.Called(email, key)
	return args.Error(0)
}

func (m *MockKeyStore) LoadCorrespondentKey(email string) (*keys.PublicKey, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.PublicKey), args.Error(1)
}

// MockRemoteKeyDirectory is a mock implementation of RemoteKeyDirectory
type MockRemoteKeyDirectory struct {
	mock.Mock
}

func (m *MockRemoteKeyDirectory) GetKey(ctx context.Context, email string) (*keys.PublicKey, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.PublicKey), args.Error(1)
}

func (m *MockRemoteKeyDirectory) PutKey(ctx context.Context, email string, key *keys.PublicKey) error {
	args := m.Called(ctx, email, key)
	return args.Error(0)
}

// MockRemoteMessageDirectory is a mock implementation of RemoteMessageDirectory
type MockRemoteMessageDirectory struct {
	mock.Mock
}

func (m *MockRemoteMessageDirectory) GetMessage(ctx context.Context, email string) (*messages.Message, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messages.Message), args.Error(1)
}

func (m *MockRemoteMessageDirectory) PutMessage(ctx context.Context, email string, message *messages.Message) error {
	args := m.Called(ctx, email, message)
	return args.Error(0)
}
