package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrRateNotFound = errors.New("market rate not found")

// MarketRate holds one calendar day of rate samples for one type. HourlyRate
// is the ordered JSON sample sequence; the (type, day) pair is unique so a day
// can only ever have one row per type.
type MarketRate struct {
	ID         string         `gorm:"primaryKey"`
	Type       string         `gorm:"not null;uniqueIndex:idx_market_rates_type_day"`
	Day        time.Time      `gorm:"not null;uniqueIndex:idx_market_rates_type_day"`
	HourlyRate datatypes.JSON `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type MarketRateDAO struct {
	db *gorm.DB
}

func NewMarketRateDAO(db *gorm.DB) *MarketRateDAO {
	return &MarketRateDAO{
		db: db,
	}
}

func (d *MarketRateDAO) Insert(ctx context.Context, rate MarketRate) (MarketRate, error) {
	result := d.db.WithContext(ctx).Create(&rate)
	if result.Error != nil {
		return MarketRate{}, result.Error
	}

	return rate, nil
}

func (d *MarketRateDAO) FindByTypeAndDay(ctx context.Context, rateType string, day time.Time) (MarketRate, error) {
	var rate MarketRate

	result := d.db.WithContext(ctx).First(&rate, "type = ? AND day = ?", rateType, day)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return MarketRate{}, ErrRateNotFound
		}

		return MarketRate{}, result.Error
	}

	return rate, nil
}

// UpdateSamples replaces the sample sequence of an existing day row and bumps
// updated_at.
func (d *MarketRateDAO) UpdateSamples(ctx context.Context, id string, samples datatypes.JSON) (MarketRate, error) {
	result := d.db.WithContext(ctx).Model(&MarketRate{}).Where("id = ?", id).Update("hourly_rate", samples)
	if result.Error != nil {
		return MarketRate{}, result.Error
	}
	if result.RowsAffected == 0 {
		return MarketRate{}, ErrRateNotFound
	}

	var rate MarketRate
	if err := d.db.WithContext(ctx).First(&rate, "id = ?", id).Error; err != nil {
		return MarketRate{}, err
	}

	return rate, nil
}

func (d *MarketRateDAO) FindRecent(ctx context.Context, limit int) ([]MarketRate, error) {
	tx := d.db.WithContext(ctx).Order("day DESC, created_at DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var rates []MarketRate
	if err := tx.Find(&rates).Error; err != nil {
		return nil, err
	}

	return rates, nil
}
