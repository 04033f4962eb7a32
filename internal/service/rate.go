package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shwenadi/goldshop-api/internal/domain"
	"github.com/shwenadi/goldshop-api/internal/repository"
	"github.com/shwenadi/goldshop-api/internal/xid"
)

var ErrInvalidRateType = errors.New("invalid market rate type")

type MarketRateRepository interface {
	Create(ctx context.Context, rate domain.MarketRate) (domain.MarketRate, error)
	FindByTypeAndDay(ctx context.Context, rateType domain.RateType, day time.Time) (domain.MarketRate, error)
	ReplaceSamples(ctx context.Context, id string, samples []domain.RateSample) (domain.MarketRate, error)
	FindRecent(ctx context.Context, limit int) ([]domain.MarketRate, error)
}

type RateService struct {
	repo MarketRateRepository

	now func() time.Time
}

func NewRateService(repo MarketRateRepository) *RateService {
	return &RateService{
		repo: repo,
		now:  time.Now,
	}
}

// AppendRate records one sample. The first sample of a calendar day creates
// that day's row; later samples on the same day append to it. The hour label
// "12 AM" is stored as "0 AM".
func (s *RateService) AppendRate(ctx context.Context, rateType domain.RateType, value float64, timeLabel string) (domain.MarketRate, error) {
	if !rateType.IsValid() {
		return domain.MarketRate{}, ErrInvalidRateType
	}

	if timeLabel == "12 AM" {
		timeLabel = "0 AM"
	}

	sample := domain.RateSample{Time: timeLabel, Value: value}
	day := truncateToDay(s.now())

	rate, err := s.repo.FindByTypeAndDay(ctx, rateType, day)
	if err != nil {
		if !errors.Is(err, repository.ErrRateNotFound) {
			return domain.MarketRate{}, fmt.Errorf("s.repo.FindByTypeAndDay -> %w", err)
		}

		created, err := s.repo.Create(ctx, domain.MarketRate{
			ID:      xid.New("rate"),
			Type:    rateType,
			Day:     day,
			Samples: []domain.RateSample{sample},
		})
		if err != nil {
			return domain.MarketRate{}, fmt.Errorf("s.repo.Create -> %w", err)
		}

		return created, nil
	}

	updated, err := s.repo.ReplaceSamples(ctx, rate.ID, append(rate.Samples, sample))
	if err != nil {
		return domain.MarketRate{}, fmt.Errorf("s.repo.ReplaceSamples -> %w", err)
	}

	return updated, nil
}

func (s *RateService) ListRates(ctx context.Context, limit int) ([]domain.MarketRate, error) {
	rates, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindRecent -> %w", err)
	}

	return rates, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
