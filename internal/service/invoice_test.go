package service

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shwenadi/goldshop-api/internal/domain"
)

type fakeInvoiceRepo struct {
	existing     map[string]bool
	existsCalls  int
	created      []domain.Invoice
	monthly      []domain.MonthlySales
	monthlyCalls int
}

func (f *fakeInvoiceRepo) ExistsByNumber(_ context.Context, number string) (bool, error) {
	f.existsCalls++
	return f.existing[number], nil
}

func (f *fakeInvoiceRepo) Create(_ context.Context, invoice domain.Invoice) (domain.Invoice, error) {
	invoice.CreatedAt = time.Now()
	f.created = append(f.created, invoice)
	return invoice, nil
}

func (f *fakeInvoiceRepo) FindAll(_ context.Context) ([]domain.Invoice, error) {
	return f.created, nil
}

func (f *fakeInvoiceRepo) FindByID(_ context.Context, id string) (domain.Invoice, error) {
	for _, inv := range f.created {
		if inv.ID == id {
			return inv, nil
		}
	}
	return domain.Invoice{}, ErrInvoiceNotFound
}

func (f *fakeInvoiceRepo) FindByNumber(_ context.Context, number string) (domain.Invoice, error) {
	for _, inv := range f.created {
		if inv.InvoiceNumber == number {
			return inv, nil
		}
	}
	return domain.Invoice{}, ErrInvoiceNotFound
}

func (f *fakeInvoiceRepo) MonthlySales(_ context.Context, _ int) ([]domain.MonthlySales, error) {
	f.monthlyCalls++
	return f.monthly, nil
}

// memCache is an in-memory cache.Store that records invalidations.
type memCache struct {
	data    map[string][]byte
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.data, key)
		c.deleted = append(c.deleted, key)
	}
	return nil
}

func newTestInvoiceService(repo *fakeInvoiceRepo, cacheStore *memCache) *InvoiceService {
	svc := NewInvoiceService(repo, cacheStore)
	svc.now = func() time.Time {
		return time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func validSalesInvoice() domain.Invoice {
	itemID := "item-1"
	return domain.Invoice{
		CustomerName: "Aye Aye",
		Total:        950,
		Type:         domain.InvoiceSales,
		Items: []domain.InvoiceItem{
			{ItemID: &itemID, Name: "Gold Ring", Quantity: 2, Price: 500, Discount: 50},
		},
	}
}

func TestCreateInvoiceAllocatesNumber(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := newTestInvoiceService(repo, newMemCache())
	svc.randSixDigits = func() int { return 123456 }

	created, err := svc.CreateInvoice(context.Background(), validSalesInvoice())
	require.NoError(t, err)

	assert.Equal(t, "INV-2025-123456", created.InvoiceNumber)
	assert.Regexp(t, regexp.MustCompile(`^INV-\d{4}-\d{6}$`), created.InvoiceNumber)
	assert.NotEmpty(t, created.ID)
}

func TestCreateInvoiceRetriesOnCollision(t *testing.T) {
	repo := &fakeInvoiceRepo{
		existing: map[string]bool{
			"INV-2025-111111": true,
			"INV-2025-222222": true,
		},
	}
	svc := newTestInvoiceService(repo, newMemCache())

	candidates := []int{111111, 222222, 333333}
	svc.randSixDigits = func() int {
		next := candidates[0]
		candidates = candidates[1:]
		return next
	}

	created, err := svc.CreateInvoice(context.Background(), validSalesInvoice())
	require.NoError(t, err)

	assert.Equal(t, "INV-2025-333333", created.InvoiceNumber)
	assert.Equal(t, 3, repo.existsCalls)
}

func TestCreateInvoiceGivesUpAfterTenCollisions(t *testing.T) {
	repo := &fakeInvoiceRepo{
		existing: map[string]bool{"INV-2025-999999": true},
	}
	svc := newTestInvoiceService(repo, newMemCache())
	svc.randSixDigits = func() int { return 999999 }

	_, err := svc.CreateInvoice(context.Background(), validSalesInvoice())

	require.ErrorIs(t, err, ErrInvoiceNumberExhausted)
	assert.Equal(t, 10, repo.existsCalls)
	assert.Empty(t, repo.created, "nothing may be persisted when allocation fails")
}

func TestCreateInvoiceRecomputesLineTotals(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := newTestInvoiceService(repo, newMemCache())

	invoice := validSalesInvoice()
	invoice.Items[0].Total = 1 // caller-supplied garbage

	created, err := svc.CreateInvoice(context.Background(), invoice)
	require.NoError(t, err)

	// 500 * 2 - 50
	assert.Equal(t, 950.0, created.Items[0].Total)
}

func TestCreateInvoicePawnRequiresDueDate(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := newTestInvoiceService(repo, newMemCache())

	invoice := validSalesInvoice()
	invoice.Type = domain.InvoicePawn
	invoice.DueDate = nil

	_, err := svc.CreateInvoice(context.Background(), invoice)

	require.ErrorIs(t, err, ErrPawnDueDateRequired)
	assert.Empty(t, repo.created)
}

func TestCreateInvoicePawnWithDueDate(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := newTestInvoiceService(repo, newMemCache())

	due := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	invoice := validSalesInvoice()
	invoice.Type = domain.InvoicePawn
	invoice.Status = "active"
	invoice.DueDate = &due

	created, err := svc.CreateInvoice(context.Background(), invoice)
	require.NoError(t, err)
	assert.Equal(t, "active", created.Status)
}

func TestCreateInvoiceDefaultsStatus(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := newTestInvoiceService(repo, newMemCache())

	created, err := svc.CreateInvoice(context.Background(), validSalesInvoice())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultInvoiceStatus, created.Status)
}

func TestCreateInvoiceRejectsStatusOutsideTypeDomain(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := newTestInvoiceService(repo, newMemCache())

	due := time.Now()
	invoice := validSalesInvoice()
	invoice.Type = domain.InvoicePawn
	invoice.DueDate = &due
	invoice.Status = "paid" // payment status on a loan lifecycle

	_, err := svc.CreateInvoice(context.Background(), invoice)

	require.ErrorIs(t, err, ErrInvalidInvoiceStatus)
}

func TestCreateInvoiceValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(inv *domain.Invoice)
		wantErr error
	}{
		{
			name:    "invalid type",
			mutate:  func(inv *domain.Invoice) { inv.Type = "rental" },
			wantErr: ErrInvalidInvoiceType,
		},
		{
			name:    "no items",
			mutate:  func(inv *domain.Invoice) { inv.Items = nil },
			wantErr: ErrInvoiceWithoutItems,
		},
		{
			name:    "zero quantity",
			mutate:  func(inv *domain.Invoice) { inv.Items[0].Quantity = 0 },
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "negative discount",
			mutate:  func(inv *domain.Invoice) { inv.Items[0].Discount = -1 },
			wantErr: ErrNegativeDiscount,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeInvoiceRepo{}
			svc := newTestInvoiceService(repo, newMemCache())

			invoice := validSalesInvoice()
			tc.mutate(&invoice)

			_, err := svc.CreateInvoice(context.Background(), invoice)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGetMonthlySalesCachesResult(t *testing.T) {
	repo := &fakeInvoiceRepo{
		monthly: []domain.MonthlySales{{Month: 3, Sales: 1000}},
	}
	cacheStore := newMemCache()
	svc := newTestInvoiceService(repo, cacheStore)

	first, err := svc.GetMonthlySales(context.Background(), 2025)
	require.NoError(t, err)

	second, err := svc.GetMonthlySales(context.Background(), 2025)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.monthlyCalls, "second call must be served from cache")
}

func TestCreateInvoiceInvalidatesMonthlySalesCache(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	cacheStore := newMemCache()
	svc := newTestInvoiceService(repo, cacheStore)

	_, err := svc.GetMonthlySales(context.Background(), time.Now().Year())
	require.NoError(t, err)

	_, err = svc.CreateInvoice(context.Background(), validSalesInvoice())
	require.NoError(t, err)

	assert.NotEmpty(t, cacheStore.deleted)
}
