package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shwenadi/goldshop-api/internal/domain"
)

type fakeSettingsRepo struct {
	categories    []domain.Category
	materials     []domain.Material
	categoryReads int
}

func (f *fakeSettingsRepo) CreateCategory(_ context.Context, category domain.Category) (domain.Category, error) {
	for _, c := range f.categories {
		if c.ID == category.ID {
			return domain.Category{}, ErrDuplicateCategory
		}
	}
	f.categories = append(f.categories, category)
	return category, nil
}

func (f *fakeSettingsRepo) FindAllCategories(_ context.Context) ([]domain.Category, error) {
	f.categoryReads++
	return f.categories, nil
}

func (f *fakeSettingsRepo) UpdateCategory(_ context.Context, id, name string) (domain.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories[i].Name = name
			return f.categories[i], nil
		}
	}
	return domain.Category{}, ErrCategoryNotFound
}

func (f *fakeSettingsRepo) DeleteCategory(_ context.Context, id string) error {
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return ErrCategoryNotFound
}

func (f *fakeSettingsRepo) CreateMaterial(_ context.Context, material domain.Material) (domain.Material, error) {
	for _, m := range f.materials {
		if m.ID == material.ID {
			return domain.Material{}, ErrDuplicateMaterial
		}
	}
	f.materials = append(f.materials, material)
	return material, nil
}

func (f *fakeSettingsRepo) FindAllMaterials(_ context.Context) ([]domain.Material, error) {
	return f.materials, nil
}

func (f *fakeSettingsRepo) UpdateMaterial(_ context.Context, id, name string) (domain.Material, error) {
	for i := range f.materials {
		if f.materials[i].ID == id {
			f.materials[i].Name = name
			return f.materials[i], nil
		}
	}
	return domain.Material{}, ErrMaterialNotFound
}

func (f *fakeSettingsRepo) DeleteMaterial(_ context.Context, id string) error {
	for i := range f.materials {
		if f.materials[i].ID == id {
			f.materials = append(f.materials[:i], f.materials[i+1:]...)
			return nil
		}
	}
	return ErrMaterialNotFound
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Rings", "rings"},
		{"White Gold", "white-gold"},
		{"  Sterling   Silver  ", "sterling-silver"},
		{"22K GOLD", "22k-gold"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Slugify(tc.name))
	}
}

func TestCreateCategorySlugsID(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, newMemCache())

	created, err := svc.CreateCategory(context.Background(), "White Gold")
	require.NoError(t, err)

	assert.Equal(t, "white-gold", created.ID)
	assert.Equal(t, "White Gold", created.Name)
}

func TestCreateCategoryDuplicate(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, newMemCache())

	_, err := svc.CreateCategory(context.Background(), "Rings")
	require.NoError(t, err)

	_, err = svc.CreateCategory(context.Background(), "rings")
	require.ErrorIs(t, err, ErrDuplicateCategory)
}

func TestListCategoriesCaches(t *testing.T) {
	repo := &fakeSettingsRepo{
		categories: []domain.Category{{ID: "rings", Name: "Rings"}},
	}
	svc := NewSettingsService(repo, newMemCache())

	first, err := svc.ListCategories(context.Background())
	require.NoError(t, err)

	second, err := svc.ListCategories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.categoryReads)
}

func TestCategoryMutationsInvalidateCache(t *testing.T) {
	repo := &fakeSettingsRepo{}
	cacheStore := newMemCache()
	svc := NewSettingsService(repo, cacheStore)

	_, err := svc.ListCategories(context.Background())
	require.NoError(t, err)

	_, err = svc.CreateCategory(context.Background(), "Rings")
	require.NoError(t, err)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)

	require.Len(t, categories, 1)
	assert.Contains(t, cacheStore.deleted, "settings:categories")
}

func TestCreateMaterialSlugsID(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, newMemCache())

	created, err := svc.CreateMaterial(context.Background(), "Sterling Silver")
	require.NoError(t, err)

	assert.Equal(t, "sterling-silver", created.ID)
}

func TestDeleteMaterialNotFound(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, newMemCache())

	err := svc.DeleteMaterial(context.Background(), "platinum")

	require.ErrorIs(t, err, ErrMaterialNotFound)
}
