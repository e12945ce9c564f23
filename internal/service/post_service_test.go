package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"alumniport/internal/auth"
	"alumniport/internal/errors"
	"alumniport/internal/model"
	"alumniport/internal/repository"
)

// MockPostRepository is a mock implementation of PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) ListLikes(ctx context.Context, postID uuid.UUID) ([]model.Like, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Like), args.Error(1)
}

func (m *MockPostRepository) HasLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) CreateLike(ctx context.Context, like *model.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockPostRepository) DeleteLike(ctx context.Context, postID, userID uuid.UUID) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockPostRepository) ListComments(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockPostRepository) FindCommentByID(ctx context.Context, postID, commentID uuid.UUID) (*model.Comment, error) {
	args := m.Called(ctx, postID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockPostRepository) CreateComment(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockPostRepository) DeleteComment(ctx context.Context, postID, commentID uuid.UUID) error {
	args := m.Called(ctx, postID, commentID)
	return args.Error(0)
}

// WithTransaction runs fn against the same mock, standing in for the
// transactional repository.
func (m *MockPostRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.PostRepository) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx, m)
}

func (m *MockPostRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func alumniClaims() *auth.Claims {
	return &auth.Claims{
		UserID:         uuid.New(),
		Role:           model.RoleAlumni,
		Name:           "John Doe",
		BatchYear:      2018,
		Branch:         "Computer Science",
		ProfilePicture: "https://example.com/john.png",
	}
}

func studentClaims() *auth.Claims {
	return &auth.Claims{
		UserID:    uuid.New(),
		Role:      model.RoleStudent,
		Name:      "Jane Smith",
		BatchYear: 2026,
		Branch:    "Computer Science",
	}
}

func TestPostService_CreatePost(t *testing.T) {
	tests := []struct {
		name          string
		caller        *auth.Claims
		content       string
		setupMock     func(*MockPostRepository)
		expectedError error
	}{
		{
			name:    "alumni can post",
			caller:  alumniClaims(),
			content: "Hello juniors!",
			setupMock: func(m *MockPostRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "student cannot post",
			caller:        studentClaims(),
			content:       "Hello",
			setupMock:     func(m *MockPostRepository) {},
			expectedError: errors.ErrAlumniOnly,
		},
		{
			name:          "blank content rejected",
			caller:        alumniClaims(),
			content:       "   \n\t ",
			setupMock:     func(m *MockPostRepository) {},
			expectedError: errors.ErrEmptyContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			tt.setupMock(mockRepo)

			service := NewPostService(mockRepo)
			post, err := service.CreatePost(context.Background(), tt.caller, tt.content)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, post)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, post)
				// Author snapshot comes from the claims
				assert.Equal(t, tt.caller.UserID, post.AuthorID)
				assert.Equal(t, tt.caller.Name, post.AuthorName)
				assert.Equal(t, tt.caller.Role, post.AuthorRole)
				assert.Equal(t, tt.caller.BatchYear, post.AuthorBatch)
				assert.Equal(t, tt.caller.Branch, post.AuthorBranch)
				assert.Equal(t, tt.caller.ProfilePicture, post.AuthorProfilePic)
				assert.NotNil(t, post.Likes)
				assert.NotNil(t, post.Comments)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_DeletePost(t *testing.T) {
	author := alumniClaims()
	other := alumniClaims()
	postID := uuid.New()

	tests := []struct {
		name          string
		caller        *auth.Claims
		setupMock     func(*MockPostRepository)
		expectedError error
	}{
		{
			name:   "author can delete",
			caller: author,
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID, AuthorID: author.UserID}, nil)
				m.On("Delete", mock.Anything, postID).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:   "non-author forbidden",
			caller: other,
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID, AuthorID: author.UserID}, nil)
			},
			expectedError: errors.ErrNotPostAuthor,
		},
		{
			name:   "unknown post",
			caller: author,
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, postID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			tt.setupMock(mockRepo)

			service := NewPostService(mockRepo)
			err := service.DeletePost(context.Background(), tt.caller, postID)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_LikePost(t *testing.T) {
	caller := studentClaims()
	postID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockPostRepository)
		expectedError error
		expectedLikes int
	}{
		{
			name: "first like succeeds",
			setupMock: func(m *MockPostRepository) {
				m.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				m.On("FindByIDForUpdate", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
				m.On("HasLike", mock.Anything, postID, caller.UserID).Return(false, nil)
				m.On("CreateLike", mock.Anything, mock.AnythingOfType("*model.Like")).Return(nil)
				m.On("ListLikes", mock.Anything, postID).Return([]model.Like{{PostID: postID, UserID: caller.UserID}}, nil)
			},
			expectedLikes: 1,
		},
		{
			name: "second like fails",
			setupMock: func(m *MockPostRepository) {
				m.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				m.On("FindByIDForUpdate", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
				m.On("HasLike", mock.Anything, postID, caller.UserID).Return(true, nil)
			},
			expectedError: errors.ErrAlreadyLiked,
		},
		{
			name: "unknown post",
			setupMock: func(m *MockPostRepository) {
				m.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				m.On("FindByIDForUpdate", mock.Anything, postID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrPostNotFound,
		},
		{
			// Even if the row lock is bypassed, the unique index on
			// (post_id, user_id) rejects the insert and the error stays
			// a domain error rather than a raw driver error.
			name: "duplicate caught by unique index at insert",
			setupMock: func(m *MockPostRepository) {
				m.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				m.On("FindByIDForUpdate", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
				m.On("HasLike", mock.Anything, postID, caller.UserID).Return(false, nil)
				m.On("CreateLike", mock.Anything, mock.AnythingOfType("*model.Like")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: errors.ErrAlreadyLiked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			tt.setupMock(mockRepo)

			service := NewPostService(mockRepo)
			likes, err := service.LikePost(context.Background(), caller, postID)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, likes)
			} else {
				assert.NoError(t, err)
				assert.Len(t, likes, tt.expectedLikes)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_UnlikePost(t *testing.T) {
	caller := studentClaims()
	postID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockPostRepository)
		expectedError error
	}{
		{
			name: "existing like removed",
			setupMock: func(m *MockPostRepository) {
				m.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				m.On("FindByIDForUpdate", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
				m.On("HasLike", mock.Anything, postID, caller.UserID).Return(true, nil)
				m.On("DeleteLike", mock.Anything, postID, caller.UserID).Return(nil)
				m.On("ListLikes", mock.Anything, postID).Return([]model.Like{}, nil)
			},
		},
		{
			name: "never liked fails",
			setupMock: func(m *MockPostRepository) {
				m.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				m.On("FindByIDForUpdate", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
				m.On("HasLike", mock.Anything, postID, caller.UserID).Return(false, nil)
			},
			expectedError: errors.ErrNotLiked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			tt.setupMock(mockRepo)

			service := NewPostService(mockRepo)
			likes, err := service.UnlikePost(context.Background(), caller, postID)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, likes)
			} else {
				assert.NoError(t, err)
				assert.Empty(t, likes)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_AddComment(t *testing.T) {
	caller := studentClaims()
	postID := uuid.New()

	t.Run("comment appended with snapshot", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		mockRepo.On("FindByIDForUpdate", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
		mockRepo.On("CreateComment", mock.Anything, mock.MatchedBy(func(c *model.Comment) bool {
			return c.UserID == caller.UserID && c.Name == caller.Name && c.Text == "Nice post"
		})).Return(nil)
		mockRepo.On("ListComments", mock.Anything, postID).Return([]model.Comment{{PostID: postID, Text: "Nice post"}}, nil)

		service := NewPostService(mockRepo)
		comments, err := service.AddComment(context.Background(), caller, postID, "  Nice post  ")

		assert.NoError(t, err)
		assert.Len(t, comments, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("blank text rejected", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo)

		comments, err := service.AddComment(context.Background(), caller, postID, "   ")

		assert.Equal(t, errors.ErrEmptyComment, err)
		assert.Nil(t, comments)
		mockRepo.AssertExpectations(t)
	})
}

func TestPostService_DeleteComment(t *testing.T) {
	author := studentClaims()
	other := studentClaims()
	postID := uuid.New()
	commentID := uuid.New()

	tests := []struct {
		name          string
		caller        *auth.Claims
		setupMock     func(*MockPostRepository)
		expectedError error
	}{
		{
			name:   "comment author can delete",
			caller: author,
			setupMock: func(m *MockPostRepository) {
				m.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				m.On("FindByIDForUpdate", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
				m.On("FindCommentByID", mock.Anything, postID, commentID).
					Return(&model.Comment{ID: commentID, PostID: postID, UserID: author.UserID}, nil)
				m.On("DeleteComment", mock.Anything, postID, commentID).Return(nil)
				m.On("ListComments", mock.Anything, postID).Return([]model.Comment{}, nil)
			},
		},
		{
			name:   "non-author forbidden",
			caller: other,
			setupMock: func(m *MockPostRepository) {
				m.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				m.On("FindByIDForUpdate", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
				m.On("FindCommentByID", mock.Anything, postID, commentID).
					Return(&model.Comment{ID: commentID, PostID: postID, UserID: author.UserID}, nil)
			},
			expectedError: errors.ErrNotCommentAuthor,
		},
		{
			name:   "unknown comment",
			caller: author,
			setupMock: func(m *MockPostRepository) {
				m.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
				m.On("FindByIDForUpdate", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
				m.On("FindCommentByID", mock.Anything, postID, commentID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrCommentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			tt.setupMock(mockRepo)

			service := NewPostService(mockRepo)
			comments, err := service.DeleteComment(context.Background(), tt.caller, postID, commentID)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, comments)
			} else {
				assert.NoError(t, err)
				assert.Empty(t, comments)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// Likes from two distinct users on the same post must both land.
func TestPostService_LikesByDistinctUsersBothLand(t *testing.T) {
	userA := studentClaims()
	userB := studentClaims()
	postID := uuid.New()

	inserted := []model.Like{}

	mockRepo := new(MockPostRepository)
	mockRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	mockRepo.On("FindByIDForUpdate", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
	mockRepo.On("HasLike", mock.Anything, postID, userA.UserID).Return(false, nil)
	mockRepo.On("HasLike", mock.Anything, postID, userB.UserID).Return(false, nil)
	mockRepo.On("CreateLike", mock.Anything, mock.AnythingOfType("*model.Like")).
		Run(func(args mock.Arguments) {
			inserted = append(inserted, *args.Get(1).(*model.Like))
		}).Return(nil)
	mockRepo.On("ListLikes", mock.Anything, postID).
		Return([]model.Like{{PostID: postID, UserID: userA.UserID}}, nil).Once()
	mockRepo.On("ListLikes", mock.Anything, postID).
		Return([]model.Like{{PostID: postID, UserID: userB.UserID}, {PostID: postID, UserID: userA.UserID}}, nil).Once()

	service := NewPostService(mockRepo)

	_, err := service.LikePost(context.Background(), userA, postID)
	assert.NoError(t, err)
	likes, err := service.LikePost(context.Background(), userB, postID)
	assert.NoError(t, err)

	assert.Len(t, inserted, 2)
	assert.Len(t, likes, 2)
	assert.Equal(t, userB.UserID, likes[0].UserID)
	assert.Equal(t, userA.UserID, likes[1].UserID)
}
