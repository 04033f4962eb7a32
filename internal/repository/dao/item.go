package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrItemNotFound = errors.New("item not found")

type Item struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Category    string `gorm:"not null;index"`
	Description string
	Material    string
	Stock       int    `gorm:"not null;default:0"`
	Image       string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ItemQuery carries the listing filters down to SQL. Zero values mean
// "no filter"; Limit <= 0 disables pagination.
type ItemQuery struct {
	Category    string
	Materials   []string
	StockStatus string
	Offset      int
	Limit       int
}

type ItemDAO struct {
	db *gorm.DB
}

func NewItemDAO(db *gorm.DB) *ItemDAO {
	return &ItemDAO{
		db: db,
	}
}

func (d *ItemDAO) Insert(ctx context.Context, item Item) (Item, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		return Item{}, result.Error
	}

	return item, nil
}

// Update applies only the given columns. updated_at is bumped by GORM.
func (d *ItemDAO) Update(ctx context.Context, id string, fields map[string]interface{}) (Item, error) {
	result := d.db.WithContext(ctx).Model(&Item{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return Item{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Item{}, ErrItemNotFound
	}

	return d.FindByID(ctx, id)
}

func (d *ItemDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Item{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (d *ItemDAO) FindByID(ctx context.Context, id string) (Item, error) {
	var item Item

	result := d.db.WithContext(ctx).First(&item, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Item{}, ErrItemNotFound
		}

		return Item{}, result.Error
	}

	return item, nil
}

func (d *ItemDAO) FindPage(ctx context.Context, query ItemQuery) ([]Item, int64, error) {
	tx := d.db.WithContext(ctx).Model(&Item{})

	if query.Category != "" {
		tx = tx.Where("category = ?", query.Category)
	}

	if len(query.Materials) > 0 {
		materials := d.db.Where("material ILIKE ?", "%"+query.Materials[0]+"%")
		for _, m := range query.Materials[1:] {
			materials = materials.Or("material ILIKE ?", "%"+m+"%")
		}
		tx = tx.Where(materials)
	}

	switch query.StockStatus {
	case "low-stock":
		tx = tx.Where("stock > 0 AND stock <= ?", 5)
	case "out-of-stock":
		tx = tx.Where("stock = 0")
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if query.Limit > 0 {
		tx = tx.Offset(query.Offset).Limit(query.Limit)
	}

	var items []Item
	if err := tx.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (d *ItemDAO) FindAll(ctx context.Context) ([]Item, error) {
	var items []Item

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// SetStock writes an absolute stock value, unlike the relative adjustments
// applied during invoice settlement.
func (d *ItemDAO) SetStock(ctx context.Context, id string, stock int) (Item, error) {
	result := d.db.WithContext(ctx).Model(&Item{}).Where("id = ?", id).Update("stock", stock)
	if result.Error != nil {
		return Item{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Item{}, ErrItemNotFound
	}

	return d.FindByID(ctx, id)
}
