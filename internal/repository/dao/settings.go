package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrMaterialNotFound  = errors.New("material not found")
	ErrDuplicateMaterial = errors.New("material already exists")
)

type Category struct {
	ID        string    `gorm:"primaryKey"`
	Name      string    `gorm:"unique;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

type Material struct {
	ID        string    `gorm:"primaryKey"`
	Name      string    `gorm:"unique;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

type SettingsDAO struct {
	db *gorm.DB
}

func NewSettingsDAO(db *gorm.DB) *SettingsDAO {
	return &SettingsDAO{
		db: db,
	}
}

func (d *SettingsDAO) InsertCategory(ctx context.Context, category Category) (Category, error) {
	result := d.db.WithContext(ctx).Create(&category)
	if result.Error != nil {
		if isUniqueOrDuplicateKey(result.Error) {
			return Category{}, ErrDuplicateCategory
		}

		return Category{}, result.Error
	}

	return category, nil
}

func (d *SettingsDAO) FindAllCategories(ctx context.Context) ([]Category, error) {
	var categories []Category

	result := d.db.WithContext(ctx).Order("created_at ASC").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (d *SettingsDAO) UpdateCategory(ctx context.Context, id, name string) (Category, error) {
	result := d.db.WithContext(ctx).Model(&Category{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		if isUniqueOrDuplicateKey(result.Error) {
			return Category{}, ErrDuplicateCategory
		}

		return Category{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Category{}, ErrCategoryNotFound
	}

	var category Category
	if err := d.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return Category{}, err
	}

	return category, nil
}

func (d *SettingsDAO) DeleteCategory(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

func (d *SettingsDAO) InsertMaterial(ctx context.Context, material Material) (Material, error) {
	result := d.db.WithContext(ctx).Create(&material)
	if result.Error != nil {
		if isUniqueOrDuplicateKey(result.Error) {
			return Material{}, ErrDuplicateMaterial
		}

		return Material{}, result.Error
	}

	return material, nil
}

func (d *SettingsDAO) FindAllMaterials(ctx context.Context) ([]Material, error) {
	var materials []Material

	result := d.db.WithContext(ctx).Order("created_at ASC").Find(&materials)
	if result.Error != nil {
		return nil, result.Error
	}

	return materials, nil
}

func (d *SettingsDAO) UpdateMaterial(ctx context.Context, id, name string) (Material, error) {
	result := d.db.WithContext(ctx).Model(&Material{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		if isUniqueOrDuplicateKey(result.Error) {
			return Material{}, ErrDuplicateMaterial
		}

		return Material{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Material{}, ErrMaterialNotFound
	}

	var material Material
	if err := d.db.WithContext(ctx).First(&material, "id = ?", id).Error; err != nil {
		return Material{}, err
	}

	return material, nil
}

func (d *SettingsDAO) DeleteMaterial(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Material{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMaterialNotFound
	}

	return nil
}

// isUniqueOrDuplicateKey covers both a unique-constraint violation from
// postgres and gorm's own duplicated-key translation.
func isUniqueOrDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
