package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/shwenadi/goldshop-api/internal/cache"
	"github.com/shwenadi/goldshop-api/internal/domain"
	"github.com/shwenadi/goldshop-api/internal/repository"
	"github.com/shwenadi/goldshop-api/internal/xid"
)

var (
	ErrInvoiceNotFound        = repository.ErrInvoiceNotFound
	ErrDuplicateInvoiceNumber = repository.ErrDuplicateInvoiceNumber
	ErrInvoiceNumberExhausted = errors.New("failed to allocate a unique invoice number")
	ErrPawnDueDateRequired    = errors.New("due date is required for pawn invoices")
	ErrInvalidInvoiceType     = errors.New("invalid invoice type")
	ErrInvalidInvoiceStatus   = errors.New("invalid status for invoice type")
	ErrInvoiceWithoutItems    = errors.New("invoice must have at least one item")
	ErrInvalidQuantity        = errors.New("item quantity must be positive")
	ErrNegativeDiscount       = errors.New("item discount cannot be negative")
)

// invoiceNumberAttempts bounds the number-allocation retry loop. Collisions
// are rare (six random digits per year) but possible, and the loop must give
// up rather than spin.
const invoiceNumberAttempts = 10

const monthlySalesTTL = time.Hour

type InvoiceRepository interface {
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	Create(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error)
	FindAll(ctx context.Context) ([]domain.Invoice, error)
	FindByID(ctx context.Context, id string) (domain.Invoice, error)
	FindByNumber(ctx context.Context, number string) (domain.Invoice, error)
	MonthlySales(ctx context.Context, year int) ([]domain.MonthlySales, error)
}

type InvoiceService struct {
	repo  InvoiceRepository
	cache cache.Store

	now           func() time.Time
	randSixDigits func() int
}

func NewInvoiceService(repo InvoiceRepository, cacheStore cache.Store) *InvoiceService {
	return &InvoiceService{
		repo:  repo,
		cache: cacheStore,
		now:   time.Now,
		randSixDigits: func() int {
			return rand.Intn(900000) + 100000
		},
	}
}

// CreateInvoice validates the invoice, allocates a unique invoice number, and
// persists the invoice, its line items, and the stock adjustments as one
// atomic write. Line totals are recomputed as price*quantity - discount no
// matter what the caller sent. Invoice.Total is taken as-is: the caller is
// trusted to supply it and it is not checked against the line-item sum.
func (s *InvoiceService) CreateInvoice(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error) {
	if err := validateInvoice(&invoice); err != nil {
		return domain.Invoice{}, err
	}

	number, err := s.allocateInvoiceNumber(ctx)
	if err != nil {
		return domain.Invoice{}, err
	}
	invoice.InvoiceNumber = number

	invoice.ID = xid.New("inv")
	for i := range invoice.Items {
		invoice.Items[i].ID = xid.New("invi")
		invoice.Items[i].InvoiceID = invoice.ID
		invoice.Items[i].Total = invoice.Items[i].ComputedTotal()
	}

	created, err := s.repo.Create(ctx, invoice)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.invalidateMonthlySales(ctx, created.CreatedAt.Year())

	return created, nil
}

func validateInvoice(invoice *domain.Invoice) error {
	if !invoice.Type.IsValid() {
		return ErrInvalidInvoiceType
	}

	if invoice.Type == domain.InvoicePawn && invoice.DueDate == nil {
		return ErrPawnDueDateRequired
	}

	if invoice.Status == "" {
		invoice.Status = domain.DefaultInvoiceStatus
	} else if !invoice.Type.ValidStatus(invoice.Status) {
		return ErrInvalidInvoiceStatus
	}

	if len(invoice.Items) == 0 {
		return ErrInvoiceWithoutItems
	}

	for _, li := range invoice.Items {
		if li.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		if li.Discount < 0 {
			return ErrNegativeDiscount
		}
	}

	return nil
}

// allocateInvoiceNumber draws INV-<year>-<6 digits> candidates until one is
// unused, giving up after invoiceNumberAttempts collisions. Two concurrent
// creations can still pass the existence check with the same number; the
// unique constraint on invoice_number turns that race into an insert failure
// instead of a silent duplicate.
func (s *InvoiceService) allocateInvoiceNumber(ctx context.Context) (string, error) {
	year := s.now().Year()

	for attempt := 0; attempt < invoiceNumberAttempts; attempt++ {
		candidate := fmt.Sprintf("INV-%d-%d", year, s.randSixDigits())

		exists, err := s.repo.ExistsByNumber(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("s.repo.ExistsByNumber -> %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", ErrInvoiceNumberExhausted
}

// GetInvoices returns every invoice with its line items, newest first. The
// full scan is fine at this store's invoice volume.
func (s *InvoiceService) GetInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return invoices, nil
}

func (s *InvoiceService) GetInvoiceByID(ctx context.Context, id string) (domain.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return invoice, nil
}

func (s *InvoiceService) GetInvoiceByNumber(ctx context.Context, number string) (domain.Invoice, error) {
	invoice, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("s.repo.FindByNumber -> %w", err)
	}

	return invoice, nil
}

// GetMonthlySales feeds the dashboard chart: one row per month with the sales,
// pawn, and buy totals for the year. Results are cached; CreateInvoice
// invalidates the year it wrote into.
func (s *InvoiceService) GetMonthlySales(ctx context.Context, year int) ([]domain.MonthlySales, error) {
	key := monthlySalesKey(year)

	var months []domain.MonthlySales
	hit, err := s.cache.Get(ctx, key, &months)
	if err != nil {
		zap.L().Warn("monthly sales cache read failed", zap.Error(err))
	}
	if hit {
		return months, nil
	}

	months, err = s.repo.MonthlySales(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("s.repo.MonthlySales -> %w", err)
	}

	if err = s.cache.Set(ctx, key, months, monthlySalesTTL); err != nil {
		zap.L().Warn("monthly sales cache write failed", zap.Error(err))
	}

	return months, nil
}

func (s *InvoiceService) invalidateMonthlySales(ctx context.Context, year int) {
	if err := s.cache.Delete(ctx, monthlySalesKey(year)); err != nil {
		zap.L().Warn("monthly sales cache invalidation failed", zap.Error(err))
	}
}

func monthlySalesKey(year int) string {
	return fmt.Sprintf("dashboard:monthly:%d", year)
}
