package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shwenadi/goldshop-api/internal/domain"
)

type fakeItemRepo struct {
	items []domain.Item
}

func (f *fakeItemRepo) Create(_ context.Context, item domain.Item) (domain.Item, error) {
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeItemRepo) Update(_ context.Context, id string, upd domain.ItemUpdate) (domain.Item, error) {
	for i := range f.items {
		if f.items[i].ID != id {
			continue
		}
		if upd.Name != nil {
			f.items[i].Name = *upd.Name
		}
		if upd.Stock != nil {
			f.items[i].Stock = *upd.Stock
		}
		if upd.Image != nil {
			f.items[i].Image = *upd.Image
		}
		return f.items[i], nil
	}
	return domain.Item{}, ErrItemNotFound
}

func (f *fakeItemRepo) Delete(_ context.Context, id string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

func (f *fakeItemRepo) FindByID(_ context.Context, id string) (domain.Item, error) {
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.Item{}, ErrItemNotFound
}

func (f *fakeItemRepo) FindPage(_ context.Context, filter domain.ItemFilter) (domain.ItemPage, error) {
	return domain.ItemPage{
		Items:      f.items,
		TotalCount: int64(len(f.items)),
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}

func (f *fakeItemRepo) FindAll(_ context.Context) ([]domain.Item, error) {
	return f.items, nil
}

func (f *fakeItemRepo) SetStock(_ context.Context, id string, stock int) (domain.Item, error) {
	return f.Update(context.Background(), id, domain.ItemUpdate{Stock: &stock})
}

// fakeImageStore satisfies imagestore.Store without touching disk.
type fakeImageStore struct {
	saved int
}

func (f *fakeImageStore) Save(_ context.Context, prefix, ext string, _ []byte) (string, error) {
	f.saved++
	return fmt.Sprintf("%s-%d%s", prefix, f.saved, ext), nil
}

func (f *fakeImageStore) Get(_ context.Context, _ string) ([]byte, string, error) {
	return nil, "", nil
}

func (f *fakeImageStore) Delete(_ context.Context, _ string) error {
	return nil
}

func newTestCatalogService(repo *fakeItemRepo) (*CatalogService, *fakeImageStore) {
	images := &fakeImageStore{}
	return NewCatalogService(repo, images), images
}

func TestCreateItemWithoutImageUsesPlaceholder(t *testing.T) {
	svc, images := newTestCatalogService(&fakeItemRepo{})

	created, err := svc.CreateItem(context.Background(), domain.Item{
		Name:     "Gold Ring",
		Category: domain.CategoryRings,
		Material: "22k gold",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultItemImage, created.Image)
	assert.Zero(t, images.saved)
}

func TestCreateItemStoresUploadedImage(t *testing.T) {
	svc, images := newTestCatalogService(&fakeItemRepo{})

	created, err := svc.CreateItem(context.Background(), domain.Item{
		Name:     "Gold Ring",
		Category: domain.CategoryRings,
	}, &ImageUpload{
		Filename: "ring.png",
		MIME:     "image/png",
		Data:     []byte("png bytes"),
	})
	require.NoError(t, err)

	assert.Equal(t, "/images/item-1.png", created.Image)
	assert.Equal(t, 1, images.saved)
}

func TestCreateItemRejectsBadImages(t *testing.T) {
	tests := []struct {
		name   string
		upload ImageUpload
	}{
		{
			name:   "disallowed mime",
			upload: ImageUpload{Filename: "r.png", MIME: "application/pdf"},
		},
		{
			name:   "disallowed extension",
			upload: ImageUpload{Filename: "r.pdf", MIME: "image/png"},
		},
		{
			name:   "no extension",
			upload: ImageUpload{Filename: "ring", MIME: "image/jpeg"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, images := newTestCatalogService(&fakeItemRepo{})

			_, err := svc.CreateItem(context.Background(), domain.Item{
				Name:     "Gold Ring",
				Category: domain.CategoryRings,
			}, &tc.upload)

			require.ErrorIs(t, err, ErrInvalidImageType)
			assert.Zero(t, images.saved)
		})
	}
}

func TestCreateItemValidation(t *testing.T) {
	svc, _ := newTestCatalogService(&fakeItemRepo{})

	_, err := svc.CreateItem(context.Background(), domain.Item{
		Name:     "Thing",
		Category: "gadgets",
	}, nil)
	require.ErrorIs(t, err, ErrInvalidCategory)

	_, err = svc.CreateItem(context.Background(), domain.Item{
		Name:     "Gold Ring",
		Category: domain.CategoryRings,
		Stock:    -1,
	}, nil)
	require.ErrorIs(t, err, ErrNegativeStock)
}

func TestSetStockRejectsNegative(t *testing.T) {
	svc, _ := newTestCatalogService(&fakeItemRepo{})

	_, err := svc.SetStock(context.Background(), "item-1", -3)
	require.ErrorIs(t, err, ErrNegativeStock)
}

func TestListItemsDefaultsPagination(t *testing.T) {
	svc, _ := newTestCatalogService(&fakeItemRepo{})

	page, err := svc.ListItems(context.Background(), domain.ItemFilter{})
	require.NoError(t, err)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, defaultPageSize, page.PageSize)
}

func TestSearchItemsIsCaseInsensitive(t *testing.T) {
	repo := &fakeItemRepo{items: []domain.Item{
		{ID: "item-1", Name: "Golden Necklace", Category: domain.CategoryNecklaces, Stock: 3},
		{ID: "item-2", Name: "Silver Bracelet", Category: domain.CategoryBracelets, Stock: 1},
	}}
	svc, _ := newTestCatalogService(repo)

	matches, err := svc.SearchItems(context.Background(), "GOLDEN", domain.ItemFilter{})
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, "item-1", matches[0].ID)
}

func TestSearchItemsMatchesID(t *testing.T) {
	repo := &fakeItemRepo{items: []domain.Item{
		{ID: "item-42", Name: "Plain Band", Category: domain.CategoryRings, Stock: 2},
	}}
	svc, _ := newTestCatalogService(repo)

	matches, err := svc.SearchItems(context.Background(), "item-42", domain.ItemFilter{})
	require.NoError(t, err)

	require.Len(t, matches, 1)
}

func TestSearchItemsCappedAtFifty(t *testing.T) {
	repo := &fakeItemRepo{}
	for i := 0; i < searchResultCap+20; i++ {
		repo.items = append(repo.items, domain.Item{
			ID:       fmt.Sprintf("item-%d", i),
			Name:     "Gold Ring",
			Category: domain.CategoryRings,
			Stock:    1,
		})
	}
	svc, _ := newTestCatalogService(repo)

	matches, err := svc.SearchItems(context.Background(), "gold", domain.ItemFilter{})
	require.NoError(t, err)

	assert.Len(t, matches, searchResultCap)
}

func TestSearchItemsAppliesStockFilter(t *testing.T) {
	repo := &fakeItemRepo{items: []domain.Item{
		{ID: "item-1", Name: "Ring A", Stock: 0},
		{ID: "item-2", Name: "Ring B", Stock: 3},
		{ID: "item-3", Name: "Ring C", Stock: 50},
	}}
	svc, _ := newTestCatalogService(repo)

	low, err := svc.SearchItems(context.Background(), "ring", domain.ItemFilter{StockStatus: domain.StockLow})
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "item-2", low[0].ID)

	out, err := svc.SearchItems(context.Background(), "ring", domain.ItemFilter{StockStatus: domain.StockOut})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "item-1", out[0].ID)
}

func TestSearchItemsAppliesMaterialFilter(t *testing.T) {
	repo := &fakeItemRepo{items: []domain.Item{
		{ID: "item-1", Name: "Ring A", Material: "22K Gold", Stock: 1},
		{ID: "item-2", Name: "Ring B", Material: "Sterling Silver", Stock: 1},
	}}
	svc, _ := newTestCatalogService(repo)

	matches, err := svc.SearchItems(context.Background(), "ring", domain.ItemFilter{Materials: []string{"gold"}})
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, "item-1", matches[0].ID)
}
