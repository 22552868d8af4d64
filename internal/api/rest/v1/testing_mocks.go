//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/theeman05/keypost/internal/domain/keys"
	"github.com/theeman05/keypost/internal/domain/messages"
)

// MockPublicKeyRepository is a mock implementation of PublicKeyRepository
type MockPublicKeyRepository struct {
	mock.Mock
}

func (m *MockPublicKeyRepository) Get(ctx context.Context, email string) (*keys.PublicKey, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.PublicKey), args.Error(1)
}

func (m *MockPublicKeyRepository) Put(ctx context.Context, email string, key *keys.PublicKey) error {
	args := m.Called(ctx, email, key)
	return args.Error(0)
}

// MockMessageRepository is a mock implementation of MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Get(ctx context.Context, email string) (*messages.Message, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messages.Message), args.Error(1)
}

func (m *MockMessageRepository) Put(ctx context.Context, email string, message *messages.Message) error {
	args := m.Called(ctx, email, message)
	return args.Error(0)
}
