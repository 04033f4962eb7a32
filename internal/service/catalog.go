package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shwenadi/goldshop-api/internal/domain"
	"github.com/shwenadi/goldshop-api/internal/imagestore"
	"github.com/shwenadi/goldshop-api/internal/repository"
	"github.com/shwenadi/goldshop-api/internal/xid"
)

var (
	ErrItemNotFound     = repository.ErrItemNotFound
	ErrInvalidCategory  = errors.New("invalid item category")
	ErrInvalidImageType = errors.New("unsupported image type")
	ErrNegativeStock    = errors.New("stock cannot be negative")
)

// searchResultCap bounds the ad-hoc search, which scans the whole catalog in
// memory. Fine for a single shop's inventory, a ceiling beyond that.
const searchResultCap = 50

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Uploaded images must match this allow-list on both the declared MIME type
// and the filename extension; anything else is rejected before storage.
var allowedImageMIMEs = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/webp":    ".webp",
	"image/gif":     ".gif",
	"image/svg+xml": ".svg",
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".svg":  true,
}

// ImageUpload is an optional photo attached to an item create or update.
type ImageUpload struct {
	Filename string
	MIME     string
	Data     []byte
}

type ItemRepository interface {
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	Update(ctx context.Context, id string, upd domain.ItemUpdate) (domain.Item, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (domain.Item, error)
	FindPage(ctx context.Context, filter domain.ItemFilter) (domain.ItemPage, error)
	FindAll(ctx context.Context) ([]domain.Item, error)
	SetStock(ctx context.Context, id string, stock int) (domain.Item, error)
}

type CatalogService struct {
	repo   ItemRepository
	images imagestore.Store
}

func NewCatalogService(repo ItemRepository, images imagestore.Store) *CatalogService {
	return &CatalogService{
		repo:   repo,
		images: images,
	}
}

func (s *CatalogService) CreateItem(ctx context.Context, item domain.Item, upload *ImageUpload) (domain.Item, error) {
	if !item.Category.IsValid() {
		return domain.Item{}, ErrInvalidCategory
	}
	if item.Stock < 0 {
		return domain.Item{}, ErrNegativeStock
	}

	item.ID = xid.New("item")

	if upload != nil {
		uri, err := s.storeImage(ctx, upload)
		if err != nil {
			return domain.Item{}, err
		}
		item.Image = uri
	} else {
		item.Image = domain.DefaultItemImage
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) UpdateItem(ctx context.Context, id string, upd domain.ItemUpdate, upload *ImageUpload) (domain.Item, error) {
	if upd.Category != nil && !upd.Category.IsValid() {
		return domain.Item{}, ErrInvalidCategory
	}
	if upd.Stock != nil && *upd.Stock < 0 {
		return domain.Item{}, ErrNegativeStock
	}

	if upload != nil {
		uri, err := s.storeImage(ctx, upload)
		if err != nil {
			return domain.Item{}, err
		}
		upd.Image = &uri
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeleteItem removes the item unconditionally. Invoices keep their own line
// item snapshots, so nothing else is touched.
func (s *CatalogService) DeleteItem(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *CatalogService) GetItemByID(ctx context.Context, id string) (domain.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return item, nil
}

func (s *CatalogService) ListItems(ctx context.Context, filter domain.ItemFilter) (domain.ItemPage, error) {
	if filter.Category != "" && !filter.Category.IsValid() {
		return domain.ItemPage{}, ErrInvalidCategory
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	page, err := s.repo.FindPage(ctx, filter)
	if err != nil {
		return domain.ItemPage{}, fmt.Errorf("s.repo.FindPage -> %w", err)
	}

	return page, nil
}

func (s *CatalogService) SetStock(ctx context.Context, id string, stock int) (domain.Item, error) {
	if stock < 0 {
		return domain.Item{}, ErrNegativeStock
	}

	item, err := s.repo.SetStock(ctx, id, stock)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.SetStock -> %w", err)
	}

	return item, nil
}

// SearchItems matches term as a case-insensitive substring of the item name
// or id, newest first, capped at searchResultCap results.
func (s *CatalogService) SearchItems(ctx context.Context, term string, filter domain.ItemFilter) ([]domain.Item, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(term))

	matches := make([]domain.Item, 0, searchResultCap)
	for _, item := range items {
		if needle != "" &&
			!strings.Contains(strings.ToLower(item.Name), needle) &&
			!strings.Contains(strings.ToLower(item.ID), needle) {
			continue
		}
		if !matchesFilter(item, filter) {
			continue
		}

		matches = append(matches, item)
		if len(matches) == searchResultCap {
			break
		}
	}

	return matches, nil
}

func matchesFilter(item domain.Item, filter domain.ItemFilter) bool {
	if filter.Category != "" && item.Category != filter.Category {
		return false
	}

	if len(filter.Materials) > 0 {
		material := strings.ToLower(item.Material)
		found := false
		for _, m := range filter.Materials {
			if strings.Contains(material, strings.ToLower(m)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	switch filter.StockStatus {
	case domain.StockLow:
		return item.Stock > 0 && item.Stock <= domain.LowStockThreshold
	case domain.StockOut:
		return item.Stock == 0
	}

	return true
}

func (s *CatalogService) storeImage(ctx context.Context, upload *ImageUpload) (string, error) {
	ext, ok := allowedImageMIMEs[strings.ToLower(upload.MIME)]
	if !ok {
		return "", ErrInvalidImageType
	}
	if !allowedImageExts[strings.ToLower(filepath.Ext(upload.Filename))] {
		return "", ErrInvalidImageType
	}

	key, err := s.images.Save(ctx, "item", ext, upload.Data)
	if err != nil {
		return "", fmt.Errorf("s.images.Save -> %w", err)
	}

	return "/images/" + key, nil
}
