package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/shwenadi/goldshop-api/internal/domain"
	"github.com/shwenadi/goldshop-api/internal/repository/dao"
)

var ErrRateNotFound = dao.ErrRateNotFound

type MarketRateDAO interface {
	Insert(ctx context.Context, rate dao.MarketRate) (dao.MarketRate, error)
	FindByTypeAndDay(ctx context.Context, rateType string, day time.Time) (dao.MarketRate, error)
	UpdateSamples(ctx context.Context, id string, samples datatypes.JSON) (dao.MarketRate, error)
	FindRecent(ctx context.Context, limit int) ([]dao.MarketRate, error)
}

type MarketRateRepository struct {
	dao MarketRateDAO
}

func NewMarketRateRepository(dao MarketRateDAO) *MarketRateRepository {
	return &MarketRateRepository{
		dao: dao,
	}
}

func (r *MarketRateRepository) daoToDomain(rate dao.MarketRate) (domain.MarketRate, error) {
	var samples []domain.RateSample
	if len(rate.HourlyRate) > 0 {
		if err := json.Unmarshal(rate.HourlyRate, &samples); err != nil {
			return domain.MarketRate{}, fmt.Errorf("json.Unmarshal hourly_rate -> %w", err)
		}
	}

	return domain.MarketRate{
		ID:        rate.ID,
		Type:      domain.RateType(rate.Type),
		Day:       rate.Day,
		Samples:   samples,
		CreatedAt: rate.CreatedAt,
		UpdatedAt: rate.UpdatedAt,
	}, nil
}

func encodeSamples(samples []domain.RateSample) (datatypes.JSON, error) {
	raw, err := json.Marshal(samples)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal samples -> %w", err)
	}

	return datatypes.JSON(raw), nil
}

func (r *MarketRateRepository) Create(ctx context.Context, rate domain.MarketRate) (domain.MarketRate, error) {
	encoded, err := encodeSamples(rate.Samples)
	if err != nil {
		return domain.MarketRate{}, err
	}

	created, err := r.dao.Insert(ctx, dao.MarketRate{
		ID:         rate.ID,
		Type:       string(rate.Type),
		Day:        rate.Day,
		HourlyRate: encoded,
	})
	if err != nil {
		return domain.MarketRate{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created)
}

func (r *MarketRateRepository) FindByTypeAndDay(ctx context.Context, rateType domain.RateType, day time.Time) (domain.MarketRate, error) {
	rate, err := r.dao.FindByTypeAndDay(ctx, string(rateType), day)
	if err != nil {
		return domain.MarketRate{}, fmt.Errorf("r.dao.FindByTypeAndDay -> %w", err)
	}

	return r.daoToDomain(rate)
}

func (r *MarketRateRepository) ReplaceSamples(ctx context.Context, id string, samples []domain.RateSample) (domain.MarketRate, error) {
	encoded, err := encodeSamples(samples)
	if err != nil {
		return domain.MarketRate{}, err
	}

	updated, err := r.dao.UpdateSamples(ctx, id, encoded)
	if err != nil {
		return domain.MarketRate{}, fmt.Errorf("r.dao.UpdateSamples -> %w", err)
	}

	return r.daoToDomain(updated)
}

func (r *MarketRateRepository) FindRecent(ctx context.Context, limit int) ([]domain.MarketRate, error) {
	daoRates, err := r.dao.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRecent -> %w", err)
	}

	rates := make([]domain.MarketRate, len(daoRates))
	for i, rate := range daoRates {
		rates[i], err = r.daoToDomain(rate)
		if err != nil {
			return nil, err
		}
	}

	return rates, nil
}
