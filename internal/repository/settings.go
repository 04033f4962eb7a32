package repository

import (
	"context"
	"fmt"

	"github.com/shwenadi/goldshop-api/internal/domain"
	"github.com/shwenadi/goldshop-api/internal/repository/dao"
)

var (
	ErrCategoryNotFound  = dao.ErrCategoryNotFound
	ErrDuplicateCategory = dao.ErrDuplicateCategory
	ErrMaterialNotFound  = dao.ErrMaterialNotFound
	ErrDuplicateMaterial = dao.ErrDuplicateMaterial
)

type SettingsDAO interface {
	InsertCategory(ctx context.Context, category dao.Category) (dao.Category, error)
	FindAllCategories(ctx context.Context) ([]dao.Category, error)
	UpdateCategory(ctx context.Context, id, name string) (dao.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	InsertMaterial(ctx context.Context, material dao.Material) (dao.Material, error)
	FindAllMaterials(ctx context.Context) ([]dao.Material, error)
	UpdateMaterial(ctx context.Context, id, name string) (dao.Material, error)
	DeleteMaterial(ctx context.Context, id string) error
}

type SettingsRepository struct {
	dao SettingsDAO
}

func NewSettingsRepository(dao SettingsDAO) *SettingsRepository {
	return &SettingsRepository{
		dao: dao,
	}
}

func (r *SettingsRepository) CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	created, err := r.dao.InsertCategory(ctx, dao.Category{ID: category.ID, Name: category.Name})
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.InsertCategory -> %w", err)
	}

	return domain.Category(created), nil
}

func (r *SettingsRepository) FindAllCategories(ctx context.Context) ([]domain.Category, error) {
	daoCategories, err := r.dao.FindAllCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllCategories -> %w", err)
	}

	categories := make([]domain.Category, len(daoCategories))
	for i, c := range daoCategories {
		categories[i] = domain.Category(c)
	}

	return categories, nil
}

func (r *SettingsRepository) UpdateCategory(ctx context.Context, id, name string) (domain.Category, error) {
	updated, err := r.dao.UpdateCategory(ctx, id, name)
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.UpdateCategory -> %w", err)
	}

	return domain.Category(updated), nil
}

func (r *SettingsRepository) DeleteCategory(ctx context.Context, id string) error {
	if err := r.dao.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteCategory -> %w", err)
	}

	return nil
}

func (r *SettingsRepository) CreateMaterial(ctx context.Context, material domain.Material) (domain.Material, error) {
	created, err := r.dao.InsertMaterial(ctx, dao.Material{ID: material.ID, Name: material.Name})
	if err != nil {
		return domain.Material{}, fmt.Errorf("r.dao.InsertMaterial -> %w", err)
	}

	return domain.Material(created), nil
}

func (r *SettingsRepository) FindAllMaterials(ctx context.Context) ([]domain.Material, error) {
	daoMaterials, err := r.dao.FindAllMaterials(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllMaterials -> %w", err)
	}

	materials := make([]domain.Material, len(daoMaterials))
	for i, m := range daoMaterials {
		materials[i] = domain.Material(m)
	}

	return materials, nil
}

func (r *SettingsRepository) UpdateMaterial(ctx context.Context, id, name string) (domain.Material, error) {
	updated, err := r.dao.UpdateMaterial(ctx, id, name)
	if err != nil {
		return domain.Material{}, fmt.Errorf("r.dao.UpdateMaterial -> %w", err)
	}

	return domain.Material(updated), nil
}

func (r *SettingsRepository) DeleteMaterial(ctx context.Context, id string) error {
	if err := r.dao.DeleteMaterial(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteMaterial -> %w", err)
	}

	return nil
}
