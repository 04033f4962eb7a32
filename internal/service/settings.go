package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shwenadi/goldshop-api/internal/cache"
	"github.com/shwenadi/goldshop-api/internal/domain"
	"github.com/shwenadi/goldshop-api/internal/repository"
)

var (
	ErrCategoryNotFound  = repository.ErrCategoryNotFound
	ErrDuplicateCategory = repository.ErrDuplicateCategory
	ErrMaterialNotFound  = repository.ErrMaterialNotFound
	ErrDuplicateMaterial = repository.ErrDuplicateMaterial
)

const (
	categoriesCacheKey = "settings:categories"
	materialsCacheKey  = "settings:materials"

	settingsCacheTTL = 24 * time.Hour
)

type SettingsRepository interface {
	CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error)
	FindAllCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, id, name string) (domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	CreateMaterial(ctx context.Context, material domain.Material) (domain.Material, error)
	FindAllMaterials(ctx context.Context) ([]domain.Material, error)
	UpdateMaterial(ctx context.Context, id, name string) (domain.Material, error)
	DeleteMaterial(ctx context.Context, id string) error
}

// SettingsService serves the category and material lookup lists. The lists
// are read from many screens, so reads go through the cache and every
// mutation invalidates the affected key.
type SettingsService struct {
	repo  SettingsRepository
	cache cache.Store
}

func NewSettingsService(repo SettingsRepository, cacheStore cache.Store) *SettingsService {
	return &SettingsService{
		repo:  repo,
		cache: cacheStore,
	}
}

// Slugify derives the stable id from a display name: lowercased, whitespace
// runs collapsed to single hyphens.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func (s *SettingsService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if s.cacheGet(ctx, categoriesCacheKey, &categories) {
		return categories, nil
	}

	categories, err := s.repo.FindAllCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllCategories -> %w", err)
	}

	s.cacheSet(ctx, categoriesCacheKey, categories)

	return categories, nil
}

func (s *SettingsService) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	created, err := s.repo.CreateCategory(ctx, domain.Category{
		ID:   Slugify(name),
		Name: name,
	})
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.CreateCategory -> %w", err)
	}

	s.cacheInvalidate(ctx, categoriesCacheKey)

	return created, nil
}

func (s *SettingsService) UpdateCategory(ctx context.Context, id, name string) (domain.Category, error) {
	updated, err := s.repo.UpdateCategory(ctx, id, name)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.UpdateCategory -> %w", err)
	}

	s.cacheInvalidate(ctx, categoriesCacheKey)

	return updated, nil
}

func (s *SettingsService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteCategory -> %w", err)
	}

	s.cacheInvalidate(ctx, categoriesCacheKey)

	return nil
}

func (s *SettingsService) ListMaterials(ctx context.Context) ([]domain.Material, error) {
	var materials []domain.Material
	if s.cacheGet(ctx, materialsCacheKey, &materials) {
		return materials, nil
	}

	materials, err := s.repo.FindAllMaterials(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllMaterials -> %w", err)
	}

	s.cacheSet(ctx, materialsCacheKey, materials)

	return materials, nil
}

func (s *SettingsService) CreateMaterial(ctx context.Context, name string) (domain.Material, error) {
	created, err := s.repo.CreateMaterial(ctx, domain.Material{
		ID:   Slugify(name),
		Name: name,
	})
	if err != nil {
		return domain.Material{}, fmt.Errorf("s.repo.CreateMaterial -> %w", err)
	}

	s.cacheInvalidate(ctx, materialsCacheKey)

	return created, nil
}

func (s *SettingsService) UpdateMaterial(ctx context.Context, id, name string) (domain.Material, error) {
	updated, err := s.repo.UpdateMaterial(ctx, id, name)
	if err != nil {
		return domain.Material{}, fmt.Errorf("s.repo.UpdateMaterial -> %w", err)
	}

	s.cacheInvalidate(ctx, materialsCacheKey)

	return updated, nil
}

func (s *SettingsService) DeleteMaterial(ctx context.Context, id string) error {
	if err := s.repo.DeleteMaterial(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteMaterial -> %w", err)
	}

	s.cacheInvalidate(ctx, materialsCacheKey)

	return nil
}

// Cache failures degrade to database reads; they never fail the request.

func (s *SettingsService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		zap.L().Warn("settings cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return hit
}

func (s *SettingsService) cacheSet(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, settingsCacheTTL); err != nil {
		zap.L().Warn("settings cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *SettingsService) cacheInvalidate(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		zap.L().Warn("settings cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}
