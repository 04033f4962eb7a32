package domain

import "time"

type ItemCategory string

const (
	CategoryRings     ItemCategory = "rings"
	CategoryNecklaces ItemCategory = "necklaces"
	CategoryBracelets ItemCategory = "bracelets"
	CategoryEarrings  ItemCategory = "earrings"
	CategoryWatches   ItemCategory = "watches"
)

func (c ItemCategory) IsValid() bool {
	switch c {
	case CategoryRings, CategoryNecklaces, CategoryBracelets, CategoryEarrings, CategoryWatches:
		return true
	}
	return false
}

// DefaultItemImage is used when an item is created without an uploaded photo.
const DefaultItemImage = "/images/placeholder.png"

type Item struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    ItemCategory `json:"category"`
	Description string       `json:"description,omitempty"`
	Material    string       `json:"material"`
	Stock       int          `json:"stock"`
	Image       string       `json:"image"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ItemUpdate carries a partial edit; nil fields are left untouched.
type ItemUpdate struct {
	Name        *string
	Category    *ItemCategory
	Description *string
	Material    *string
	Stock       *int
	Image       *string
}

type StockStatus string

const (
	StockAll StockStatus = "all"
	StockLow StockStatus = "low-stock"
	StockOut StockStatus = "out-of-stock"
)

// LowStockThreshold bounds the low-stock bucket: 0 < stock <= threshold.
const LowStockThreshold = 5

type ItemFilter struct {
	Category    ItemCategory
	Materials   []string
	StockStatus StockStatus
	Page        int
	PageSize    int
}

type ItemPage struct {
	Items      []Item `json:"items"`
	TotalCount int64  `json:"total_count"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
}
