package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cathub/internal/cache"
	apperrors "cathub/internal/errors"
	"cathub/internal/model"
	"cathub/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes user domain operations. Profile mutation and deletion
// are allowed for the profile's own user or an admin; the role check happens
// here, before any statement is built.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	CreateUser(ctx context.Context, user *model.PostUser) (uint, error)
	UpdateUser(ctx context.Context, patch model.PutUser, id uint, actor model.Principal) error
	DeleteUser(ctx context.Context, id uint, actor model.Principal) error
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, user *model.PostUser) (uint, error) {
	return s.repo.Create(ctx, user)
}

func (s *userService) UpdateUser(ctx context.Context, patch model.PutUser, id uint, actor model.Principal) error {
	if !actor.IsAdmin() && actor.UserID != id {
		return apperrors.Forbidden("admin only")
	}
	if err := s.repo.Update(ctx, patch, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint, actor model.Principal) error {
	if !actor.IsAdmin() && actor.UserID != id {
		return apperrors.Forbidden("admin only")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
