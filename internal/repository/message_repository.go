package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alumniport/internal/model"
)

// MessageRepository defines direct-message persistence operations.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	ListConversation(ctx context.Context, userA, userB uuid.UUID) ([]model.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListConversation returns all messages exchanged between the two users,
// newest-first.
func (r *messageRepository) ListConversation(ctx context.Context, userA, userB uuid.UUID) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("seq DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
