package repository

import (
	"context"
	"fmt"

	"github.com/shwenadi/goldshop-api/internal/domain"
	"github.com/shwenadi/goldshop-api/internal/repository/dao"
)

var (
	ErrInvoiceNotFound        = dao.ErrInvoiceNotFound
	ErrDuplicateInvoiceNumber = dao.ErrDuplicateInvoiceNumber
)

type InvoiceDAO interface {
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	Insert(ctx context.Context, invoice dao.Invoice, stockDirection int) (dao.Invoice, error)
	FindAll(ctx context.Context) ([]dao.Invoice, error)
	FindByID(ctx context.Context, id string) (dao.Invoice, error)
	FindByNumber(ctx context.Context, number string) (dao.Invoice, error)
	MonthlyTotals(ctx context.Context, year int) ([]dao.MonthlyTotal, error)
}

type InvoiceRepository struct {
	dao InvoiceDAO
}

func NewInvoiceRepository(dao InvoiceDAO) *InvoiceRepository {
	return &InvoiceRepository{
		dao: dao,
	}
}

func (r *InvoiceRepository) domainToDao(inv domain.Invoice) dao.Invoice {
	items := make([]dao.InvoiceItem, len(inv.Items))
	for i, li := range inv.Items {
		items[i] = dao.InvoiceItem{
			ID:         li.ID,
			InvoiceID:  li.InvoiceID,
			ItemID:     li.ItemID,
			Name:       li.Name,
			Category:   li.Category,
			Quantity:   li.Quantity,
			Price:      li.Price,
			Discount:   li.Discount,
			Total:      li.Total,
			ReturnType: li.ReturnType,
			Weight:     li.Weight,
		}
	}

	return dao.Invoice{
		ID:              inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		CustomerName:    inv.CustomerName,
		CustomerPhone:   inv.CustomerPhone,
		CustomerAddress: inv.CustomerAddress,
		Total:           inv.Total,
		Type:            string(inv.Type),
		Status:          inv.Status,
		DueDate:         inv.DueDate,
		Notes:           inv.Notes,
		Items:           items,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
}

func (r *InvoiceRepository) daoToDomain(inv dao.Invoice) domain.Invoice {
	items := make([]domain.InvoiceItem, len(inv.Items))
	for i, li := range inv.Items {
		items[i] = domain.InvoiceItem{
			ID:         li.ID,
			InvoiceID:  li.InvoiceID,
			ItemID:     li.ItemID,
			Name:       li.Name,
			Category:   li.Category,
			Quantity:   li.Quantity,
			Price:      li.Price,
			Discount:   li.Discount,
			Total:      li.Total,
			ReturnType: li.ReturnType,
			Weight:     li.Weight,
		}
	}

	return domain.Invoice{
		ID:              inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		CustomerName:    inv.CustomerName,
		CustomerPhone:   inv.CustomerPhone,
		CustomerAddress: inv.CustomerAddress,
		Total:           inv.Total,
		Type:            domain.InvoiceType(inv.Type),
		Status:          inv.Status,
		DueDate:         inv.DueDate,
		Notes:           inv.Notes,
		Items:           items,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
}

func (r *InvoiceRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	exists, err := r.dao.ExistsByNumber(ctx, number)
	if err != nil {
		return false, fmt.Errorf("r.dao.ExistsByNumber -> %w", err)
	}

	return exists, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(invoice), invoice.Type.StockDirection())
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *InvoiceRepository) FindAll(ctx context.Context) ([]domain.Invoice, error) {
	daoInvoices, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	invoices := make([]domain.Invoice, len(daoInvoices))
	for i, inv := range daoInvoices {
		invoices[i] = r.daoToDomain(inv)
	}

	return invoices, nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (domain.Invoice, error) {
	invoice, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(invoice), nil
}

func (r *InvoiceRepository) FindByNumber(ctx context.Context, number string) (domain.Invoice, error) {
	invoice, err := r.dao.FindByNumber(ctx, number)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("r.dao.FindByNumber -> %w", err)
	}

	return r.daoToDomain(invoice), nil
}

// MonthlySales folds the per-(month, type) totals into twelve rows, one per
// month, so the chart always has a full year.
func (r *InvoiceRepository) MonthlySales(ctx context.Context, year int) ([]domain.MonthlySales, error) {
	rows, err := r.dao.MonthlyTotals(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("r.dao.MonthlyTotals -> %w", err)
	}

	months := make([]domain.MonthlySales, 12)
	for i := range months {
		months[i].Month = i + 1
	}

	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			continue
		}

		m := &months[row.Month-1]
		switch domain.InvoiceType(row.Type) {
		case domain.InvoiceSales:
			m.Sales = row.Total
		case domain.InvoicePawn:
			m.Pawn = row.Total
		case domain.InvoiceBuy:
			m.Buy = row.Total
		}
	}

	return months, nil
}
