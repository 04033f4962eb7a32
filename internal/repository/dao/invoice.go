package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrInvoiceNotFound        = errors.New("invoice not found")
	ErrDuplicateInvoiceNumber = errors.New("invoice number already exists")
)

type Invoice struct {
	ID              string `gorm:"primaryKey"`
	InvoiceNumber   string `gorm:"uniqueIndex;not null"`
	CustomerName    string `gorm:"not null"`
	CustomerPhone   string
	CustomerAddress string
	Total           float64 `gorm:"not null"`
	Type            string  `gorm:"not null"`
	Status          string  `gorm:"not null"`
	DueDate         *time.Time
	Notes           string
	Items           []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// InvoiceItem.ItemID is a weak reference: no foreign key, the catalog item
// may be deleted after the invoice is written.
type InvoiceItem struct {
	ID         string `gorm:"primaryKey"`
	InvoiceID  string `gorm:"not null;index"`
	ItemID     *string
	Name       string `gorm:"not null"`
	Category   string
	Quantity   int     `gorm:"not null"`
	Price      float64 `gorm:"not null"`
	Discount   float64 `gorm:"not null;default:0"`
	Total      float64 `gorm:"not null"`
	ReturnType string
	Weight     *float64
}

type MonthlyTotal struct {
	Month int
	Type  string
	Total float64
}

type InvoiceDAO struct {
	db *gorm.DB
}

func NewInvoiceDAO(db *gorm.DB) *InvoiceDAO {
	return &InvoiceDAO{
		db: db,
	}
}

func (d *InvoiceDAO) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Invoice{}).Where("invoice_number = ?", number).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// Insert writes the invoice, its line items, and the stock adjustments in one
// transaction; a failure anywhere rolls everything back. stockDirection is -1
// for sales, +1 for buys, and 0 for pawns (collateral never moves stock).
// Line items without an ItemID are manual entries and get no stock write.
// The deltas go through gorm.Expr so concurrent settlements against the same
// item cannot lose updates to a read-modify-write race.
func (d *InvoiceDAO) Insert(ctx context.Context, invoice Invoice, stockDirection int) (Invoice, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&invoice).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) &&
				pgErr.Code == pgerrcode.UniqueViolation &&
				strings.Contains(pgErr.Message, "invoice_number") {
				return ErrDuplicateInvoiceNumber
			}

			return err
		}

		if stockDirection == 0 {
			return nil
		}

		for _, li := range invoice.Items {
			if li.ItemID == nil {
				continue
			}

			result := tx.Model(&Item{}).
				Where("id = ?", *li.ItemID).
				Update("stock", gorm.Expr("stock + ?", stockDirection*li.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrItemNotFound
			}
		}

		return nil
	})
	if err != nil {
		return Invoice{}, err
	}

	return invoice, nil
}

func (d *InvoiceDAO) FindAll(ctx context.Context) ([]Invoice, error) {
	var invoices []Invoice

	result := d.db.WithContext(ctx).Preload("Items").Order("created_at DESC").Find(&invoices)
	if result.Error != nil {
		return nil, result.Error
	}

	return invoices, nil
}

func (d *InvoiceDAO) FindByID(ctx context.Context, id string) (Invoice, error) {
	return d.findOne(ctx, "id = ?", id)
}

func (d *InvoiceDAO) FindByNumber(ctx context.Context, number string) (Invoice, error) {
	return d.findOne(ctx, "invoice_number = ?", number)
}

func (d *InvoiceDAO) findOne(ctx context.Context, cond string, arg string) (Invoice, error) {
	var invoice Invoice

	result := d.db.WithContext(ctx).Preload("Items").First(&invoice, cond, arg)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Invoice{}, ErrInvoiceNotFound
		}

		return Invoice{}, result.Error
	}

	return invoice, nil
}

// MonthlyTotals sums invoice totals per month and type for one year.
func (d *InvoiceDAO) MonthlyTotals(ctx context.Context, year int) ([]MonthlyTotal, error) {
	var rows []MonthlyTotal

	result := d.db.WithContext(ctx).Model(&Invoice{}).
		Select("EXTRACT(MONTH FROM created_at)::int AS month, type, SUM(total) AS total").
		Where("EXTRACT(YEAR FROM created_at) = ?", year).
		Group("month, type").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
