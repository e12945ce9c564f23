package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alumniport/internal/auth"
	"alumniport/internal/errors"
	"alumniport/internal/model"
	"alumniport/internal/repository"
)

// MessageService handles direct messages between users.
type MessageService interface {
	Send(ctx context.Context, caller *auth.Claims, receiverID uuid.UUID, content string) (*model.Message, error)
	Conversation(ctx context.Context, caller *auth.Claims, otherID uuid.UUID) ([]model.Message, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

// NewMessageService creates a new message service.
func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// Send stores a message from the caller to the receiver.
func (s *messageService) Send(ctx context.Context, caller *auth.Claims, receiverID uuid.UUID, content string) (*model.Message, error) {
	if receiverID == caller.UserID {
		return nil, errors.ErrSelfMessage
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.ErrEmptyMessage
	}

	if _, err := s.userRepo.FindByID(ctx, receiverID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find receiver: %w", err)
	}

	message := &model.Message{
		SenderID:   caller.UserID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

// Conversation lists the messages between the caller and the other user,
// newest-first. A caller only ever sees conversations they are part of.
func (s *messageService) Conversation(ctx context.Context, caller *auth.Claims, otherID uuid.UUID) ([]model.Message, error) {
	if _, err := s.userRepo.FindByID(ctx, otherID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	messages, err := s.messageRepo.ListConversation(ctx, caller.UserID, otherID)
	if err != nil {
		return nil, fmt.Errorf("list conversation: %w", err)
	}
	if messages == nil {
		messages = []model.Message{}
	}
	return messages, nil
}
