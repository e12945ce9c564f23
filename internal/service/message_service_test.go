package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"alumniport/internal/errors"
	"alumniport/internal/model"
)

// MockMessageRepository is a mock implementation of MessageRepository.
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, message *model.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) ListConversation(ctx context.Context, userA, userB uuid.UUID) ([]model.Message, error) {
	args := m.Called(ctx, userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func TestMessageService_Send(t *testing.T) {
	sender := studentClaims()
	receiverID := uuid.New()

	tests := []struct {
		name          string
		receiverID    uuid.UUID
		content       string
		setupMocks    func(*MockMessageRepository, *MockUserRepository)
		expectedError error
	}{
		{
			name:       "message delivered",
			receiverID: receiverID,
			content:    "Hi, are you mentoring this semester?",
			setupMocks: func(mm *MockMessageRepository, mu *MockUserRepository) {
				mu.On("FindByID", mock.Anything, receiverID).Return(&model.User{ID: receiverID}, nil)
				mm.On("Create", mock.Anything, mock.AnythingOfType("*model.Message")).Return(nil)
			},
		},
		{
			name:          "blank content rejected",
			receiverID:    receiverID,
			content:       "   ",
			setupMocks:    func(mm *MockMessageRepository, mu *MockUserRepository) {},
			expectedError: errors.ErrEmptyMessage,
		},
		{
			name:          "self message rejected",
			receiverID:    sender.UserID,
			content:       "hello me",
			setupMocks:    func(mm *MockMessageRepository, mu *MockUserRepository) {},
			expectedError: errors.ErrSelfMessage,
		},
		{
			name:       "unknown receiver",
			receiverID: receiverID,
			content:    "hello",
			setupMocks: func(mm *MockMessageRepository, mu *MockUserRepository) {
				mu.On("FindByID", mock.Anything, receiverID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMessages := new(MockMessageRepository)
			mockUsers := new(MockUserRepository)
			tt.setupMocks(mockMessages, mockUsers)

			service := NewMessageService(mockMessages, mockUsers)
			message, err := service.Send(context.Background(), sender, tt.receiverID, tt.content)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, message)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, message)
				assert.Equal(t, sender.UserID, message.SenderID)
				assert.Equal(t, tt.receiverID, message.ReceiverID)
			}

			mockMessages.AssertExpectations(t)
			mockUsers.AssertExpectations(t)
		})
	}
}

func TestMessageService_Conversation(t *testing.T) {
	caller := studentClaims()
	otherID := uuid.New()

	t.Run("returns messages newest-first from repository", func(t *testing.T) {
		mockMessages := new(MockMessageRepository)
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, otherID).Return(&model.User{ID: otherID}, nil)
		mockMessages.On("ListConversation", mock.Anything, caller.UserID, otherID).
			Return([]model.Message{
				{SenderID: otherID, ReceiverID: caller.UserID, Content: "sure"},
				{SenderID: caller.UserID, ReceiverID: otherID, Content: "got a minute?"},
			}, nil)

		service := NewMessageService(mockMessages, mockUsers)
		messages, err := service.Conversation(context.Background(), caller, otherID)

		assert.NoError(t, err)
		assert.Len(t, messages, 2)
		mockMessages.AssertExpectations(t)
	})

	t.Run("empty conversation is an empty list", func(t *testing.T) {
		mockMessages := new(MockMessageRepository)
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, otherID).Return(&model.User{ID: otherID}, nil)
		mockMessages.On("ListConversation", mock.Anything, caller.UserID, otherID).Return(nil, nil)

		service := NewMessageService(mockMessages, mockUsers)
		messages, err := service.Conversation(context.Background(), caller, otherID)

		assert.NoError(t, err)
		assert.NotNil(t, messages)
		assert.Empty(t, messages)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockMessages := new(MockMessageRepository)
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, otherID).Return(nil, gorm.ErrRecordNotFound)

		service := NewMessageService(mockMessages, mockUsers)
		_, err := service.Conversation(context.Background(), caller, otherID)

		assert.Equal(t, errors.ErrUserNotFound, err)
	})
}
