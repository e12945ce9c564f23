package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"alumniport/internal/cache"
	"alumniport/internal/model"
	"alumniport/internal/repository"
)

const directoryCacheTTL = time.Minute

// UserService exposes the alumni/student directory.
type UserService interface {
	ListUsers(ctx context.Context, filter repository.UserFilter) ([]model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(filter repository.UserFilter) string {
	batch := ""
	if filter.BatchYear != nil {
		batch = fmt.Sprintf("%d", *filter.BatchYear)
	}
	return fmt.Sprintf("directory:%s:%s", batch, filter.Branch)
}

// ListUsers returns directory entries matching the filter, consulting the
// cache first. Password hashes carry `json:"-"` and never survive the
// round trip.
func (s *userService) ListUsers(ctx context.Context, filter repository.UserFilter) ([]model.User, error) {
	key := s.cacheKey(filter)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	users, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(users); err == nil {
		_ = s.cache.Set(ctx, key, payload, directoryCacheTTL)
	}
	return users, nil
}
