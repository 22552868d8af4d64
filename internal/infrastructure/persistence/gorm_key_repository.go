package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/theeman05/keypost/internal/domain/keys"
	"github.com/theeman05/keypost/internal/infrastructure/persistence/models"
	"github.com/theeman05/keypost/internal/pkg/logger"
)

type gormKeyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKeyRepository creates a new GORM-based PublicKeyRepository implementation
func NewGormKeyRepository(db *gorm.DB, logger logger.Logger) (keys.PublicKeyRepository, error) {
	return &gormKeyRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormKeyRepository) Get(ctx context.Context, email string) (*keys.PublicKey, error) {
	var model models.KeyRecord
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch public key: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormKeyRepository) Put(ctx context.Context, email string, key *keys.PublicKey) error {
	if err := key.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.KeyRecord{}
	model.FromDomain(email, key)

	// PUT semantics of the store: overwrite whatever is there.
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to store public key: %w", err)
	}

	r.logger.Info("Stored public key for ", email)
	return nil
}
