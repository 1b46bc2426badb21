package repository

import (
	"context"
	"errors"

	"astro-chat/internal/domain/message"
	astro_errors "astro-chat/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) Create(ctx context.Context, m *message.Message) error {
	res := r.db.WithContext(ctx).Create(m)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return astro_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

// GetBetweenAccounts returns the symmetric union of messages exchanged
// between two accounts, ordered by timestamp ascending.
func (r *PostgresMessageRepository) GetBetweenAccounts(ctx context.Context, a, b uuid.UUID) ([]message.Message, error) {
	var messages []message.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Order("timestamp ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
