package domain

import "time"

type InvoiceType string

const (
	InvoiceSales InvoiceType = "sales"
	InvoicePawn  InvoiceType = "pawn"
	InvoiceBuy   InvoiceType = "buy"
)

func (t InvoiceType) IsValid() bool {
	switch t {
	case InvoiceSales, InvoicePawn, InvoiceBuy:
		return true
	}
	return false
}

// StockDirection is the sign applied to catalog stock when an invoice of this
// type settles: sales remove inventory, buys add it, pawns hold collateral and
// never move stock.
func (t InvoiceType) StockDirection() int {
	switch t {
	case InvoiceSales:
		return -1
	case InvoiceBuy:
		return 1
	default:
		return 0
	}
}

const DefaultInvoiceStatus = "paid"

var invoiceStatuses = map[InvoiceType][]string{
	InvoiceSales: {"paid", "unpaid", "partially_paid", "cancelled"},
	InvoiceBuy:   {"paid", "unpaid", "partially_paid", "cancelled"},
	InvoicePawn:  {"active", "overdue", "expired", "redeemed"},
}

// ValidStatus reports whether status belongs to the status domain of the
// invoice type. Pawn invoices have a loan lifecycle; sales and buys a payment
// lifecycle.
func (t InvoiceType) ValidStatus(status string) bool {
	for _, s := range invoiceStatuses[t] {
		if s == status {
			return true
		}
	}
	return false
}

type Invoice struct {
	ID              string        `json:"id"`
	InvoiceNumber   string        `json:"invoice_number"`
	CustomerName    string        `json:"customer_name"`
	CustomerPhone   string        `json:"customer_phone,omitempty"`
	CustomerAddress string        `json:"customer_address,omitempty"`
	Total           float64       `json:"total"`
	Type            InvoiceType   `json:"type"`
	Status          string        `json:"status"`
	DueDate         *time.Time    `json:"due_date,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	Items           []InvoiceItem `json:"items"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// InvoiceItem is a denormalized snapshot of a catalog item (or a free-form
// entry when ItemID is nil) fixed at invoice-creation time. Later catalog
// edits or deletions do not touch it.
type InvoiceItem struct {
	ID         string   `json:"id"`
	InvoiceID  string   `json:"invoice_id"`
	ItemID     *string  `json:"item_id,omitempty"`
	Name       string   `json:"name"`
	Category   string   `json:"category,omitempty"`
	Quantity   int      `json:"quantity"`
	Price      float64  `json:"price"`
	Discount   float64  `json:"discount"`
	Total      float64  `json:"total"`
	ReturnType string   `json:"return_type,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
}

// ComputedTotal is the authoritative line total. Whatever total a caller
// supplies for a line item is ignored in favor of this.
func (li InvoiceItem) ComputedTotal() float64 {
	return li.Price*float64(li.Quantity) - li.Discount
}

type MonthlySales struct {
	Month int     `json:"month"`
	Sales float64 `json:"sales"`
	Pawn  float64 `json:"pawn"`
	Buy   float64 `json:"buy"`
}
