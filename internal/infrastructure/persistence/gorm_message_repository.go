package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/theeman05/keypost/internal/domain/messages"
	"github.com/theeman05/keypost/internal/infrastructure/persistence/models"
	"github.com/theeman05/keypost/internal/pkg/logger"
)

type gormMessageRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMessageRepository creates a new GORM-based MessageRepository implementation
func NewGormMessageRepository(db *gorm.DB, logger logger.Logger) (messages.MessageRepository, error) {
	return &gormMessageRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormMessageRepository) Get(ctx context.Context, email string) (*messages.Message, error) {
	var model models.MessageRecord
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch message: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormMessageRepository) Put(ctx context.Context, email string, message *messages.Message) error {
	if err := message.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MessageRecord{}
	model.FromDomain(email, message)

	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to store message: %w", err)
	}

	r.logger.Info("Stored message for ", email)
	return nil
}
