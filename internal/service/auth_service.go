package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"alumniport/internal/auth"
	"alumniport/internal/cache"
	"alumniport/internal/errors"
	"alumniport/internal/model"
	"alumniport/internal/repository"
)

const bcryptCost = 10

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	Role            model.Role
	BatchYear       int
	Branch          string
	ProfilePicture  string
	LinkedinURL     string
	CurrentPosition string
	Location        string
}

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	cache      *cache.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, cache *cache.Client) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		cache:      cache,
	}
}

// Register creates a new user with a hashed password. The raw password is
// discarded as soon as the hash exists.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if !input.Role.Valid() {
		return nil, errors.ErrInvalidRole
	}

	// Check if a user with this email already exists
	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:            input.Name,
		Email:           input.Email,
		PasswordHash:    string(hashedPassword),
		Role:            input.Role,
		BatchYear:       input.BatchYear,
		Branch:          input.Branch,
		ProfilePicture:  input.ProfilePicture,
		LinkedinURL:     input.LinkedinURL,
		CurrentPosition: input.CurrentPosition,
		Location:        input.Location,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// A registration for the same email can slip in between the
		// existence check and the insert; the unique index catches it.
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Cached directory listings are stale now
	_ = s.cache.DeletePattern(ctx, "directory:*")

	return user, nil
}

// Login authenticates a user and issues a session token. Unknown email and
// wrong password return the same error so callers cannot enumerate users.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}
