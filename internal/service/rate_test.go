package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shwenadi/goldshop-api/internal/domain"
	"github.com/shwenadi/goldshop-api/internal/repository"
)

type fakeRateRepo struct {
	rates []domain.MarketRate
}

func (f *fakeRateRepo) Create(_ context.Context, rate domain.MarketRate) (domain.MarketRate, error) {
	f.rates = append(f.rates, rate)
	return rate, nil
}

func (f *fakeRateRepo) FindByTypeAndDay(_ context.Context, rateType domain.RateType, day time.Time) (domain.MarketRate, error) {
	for _, rate := range f.rates {
		if rate.Type == rateType && rate.Day.Equal(day) {
			return rate, nil
		}
	}
	return domain.MarketRate{}, repository.ErrRateNotFound
}

func (f *fakeRateRepo) ReplaceSamples(_ context.Context, id string, samples []domain.RateSample) (domain.MarketRate, error) {
	for i := range f.rates {
		if f.rates[i].ID == id {
			f.rates[i].Samples = samples
			return f.rates[i], nil
		}
	}
	return domain.MarketRate{}, repository.ErrRateNotFound
}

func (f *fakeRateRepo) FindRecent(_ context.Context, limit int) ([]domain.MarketRate, error) {
	if limit > len(f.rates) {
		limit = len(f.rates)
	}
	return f.rates[:limit], nil
}

func newTestRateService(repo *fakeRateRepo, now time.Time) *RateService {
	svc := NewRateService(repo)
	svc.now = func() time.Time { return now }
	return svc
}

func TestAppendRateCreatesDailyRow(t *testing.T) {
	repo := &fakeRateRepo{}
	svc := newTestRateService(repo, time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC))

	rate, err := svc.AppendRate(context.Background(), domain.RateGold, 7150000, "9 AM")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), rate.Day)
	require.Len(t, rate.Samples, 1)
	assert.Equal(t, "9 AM", rate.Samples[0].Time)
	assert.Equal(t, 7150000.0, rate.Samples[0].Value)
}

func TestAppendRateAppendsToSameDay(t *testing.T) {
	repo := &fakeRateRepo{}
	morning := time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)
	svc := newTestRateService(repo, morning)

	_, err := svc.AppendRate(context.Background(), domain.RateGold, 7150000, "9 AM")
	require.NoError(t, err)

	svc.now = func() time.Time { return morning.Add(5 * time.Hour) }

	rate, err := svc.AppendRate(context.Background(), domain.RateGold, 7180000, "2 PM")
	require.NoError(t, err)

	require.Len(t, rate.Samples, 2)
	assert.Equal(t, "2 PM", rate.Samples[1].Time)
	assert.Len(t, repo.rates, 1, "same day must not create a second row")
}

func TestAppendRateRollsOverToNewDay(t *testing.T) {
	repo := &fakeRateRepo{}
	svc := newTestRateService(repo, time.Date(2025, time.March, 15, 23, 0, 0, 0, time.UTC))

	_, err := svc.AppendRate(context.Background(), domain.RateGold, 7150000, "11 PM")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, time.March, 16, 1, 0, 0, 0, time.UTC) }

	_, err = svc.AppendRate(context.Background(), domain.RateGold, 7160000, "1 AM")
	require.NoError(t, err)

	assert.Len(t, repo.rates, 2)
}

func TestAppendRateNormalizesMidnightLabel(t *testing.T) {
	repo := &fakeRateRepo{}
	svc := newTestRateService(repo, time.Date(2025, time.March, 15, 0, 5, 0, 0, time.UTC))

	rate, err := svc.AppendRate(context.Background(), domain.RateGold, 7150000, "12 AM")
	require.NoError(t, err)

	require.Len(t, rate.Samples, 1)
	assert.Equal(t, "0 AM", rate.Samples[0].Time)
}

func TestAppendRateKeepsTypesSeparate(t *testing.T) {
	repo := &fakeRateRepo{}
	svc := newTestRateService(repo, time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC))

	_, err := svc.AppendRate(context.Background(), domain.RateGold, 7150000, "9 AM")
	require.NoError(t, err)

	_, err = svc.AppendRate(context.Background(), domain.RateExchange, 4520, "9 AM")
	require.NoError(t, err)

	assert.Len(t, repo.rates, 2)
}

func TestAppendRateRejectsUnknownType(t *testing.T) {
	svc := newTestRateService(&fakeRateRepo{}, time.Now())

	_, err := svc.AppendRate(context.Background(), "platinum", 100, "9 AM")

	require.ErrorIs(t, err, ErrInvalidRateType)
}
