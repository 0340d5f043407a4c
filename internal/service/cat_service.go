package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cathub/internal/cache"
	"cathub/internal/model"
	"cathub/internal/repository"
)

const catCacheTTL = 5 * time.Minute

// CatService exposes cat domain operations.
type CatService interface {
	ListCats(ctx context.Context) ([]model.Cat, error)
	GetCat(ctx context.Context, id uint) (*model.Cat, error)
	CreateCat(ctx context.Context, cat *model.PostCat) (uint, error)
	UpdateCat(ctx context.Context, patch model.PutCat, id uint, actor model.Principal) error
	DeleteCat(ctx context.Context, id uint, actor model.Principal) error
}

type catService struct {
	repo  repository.CatRepository
	cache *cache.Client
}

// NewCatService builds a CatService with repository and cache.
func NewCatService(repo repository.CatRepository, cache *cache.Client) CatService {
	return &catService{repo: repo, cache: cache}
}

func (s *catService) cacheKey(id uint) string {
	return fmt.Sprintf("cat:%d", id)
}

func (s *catService) ListCats(ctx context.Context) ([]model.Cat, error) {
	return s.repo.List(ctx)
}

func (s *catService) GetCat(ctx context.Context, id uint) (*model.Cat, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Cat
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	cat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(cat); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, catCacheTTL)
	}
	return cat, nil
}

func (s *catService) CreateCat(ctx context.Context, cat *model.PostCat) (uint, error) {
	return s.repo.Create(ctx, cat)
}

// UpdateCat forwards the sparse patch together with the acting principal;
// ownership scoping happens inside the statement, not here.
func (s *catService) UpdateCat(ctx context.Context, patch model.PutCat, id uint, actor model.Principal) error {
	if err := s.repo.Update(ctx, patch, id, actor); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *catService) DeleteCat(ctx context.Context, id uint, actor model.Principal) error {
	if err := s.repo.Delete(ctx, id, actor); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
