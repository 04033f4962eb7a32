package domain

import "time"

type RateType string

const (
	RateGold     RateType = "gold"
	RateExchange RateType = "exchange_rate"
)

func (t RateType) IsValid() bool {
	return t == RateGold || t == RateExchange
}

type RateSample struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// MarketRate holds one calendar day of samples for one rate type. Samples
// arriving on the same day append to the existing row; day rollover starts a
// new row.
type MarketRate struct {
	ID        string       `json:"id"`
	Type      RateType     `json:"type"`
	Day       time.Time    `json:"day"`
	Samples   []RateSample `json:"hourly_rate"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
