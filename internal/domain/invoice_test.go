package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockDirection(t *testing.T) {
	assert.Equal(t, -1, InvoiceSales.StockDirection())
	assert.Equal(t, 1, InvoiceBuy.StockDirection())
	assert.Equal(t, 0, InvoicePawn.StockDirection())
}

func TestInvoiceTypeIsValid(t *testing.T) {
	assert.True(t, InvoiceSales.IsValid())
	assert.True(t, InvoicePawn.IsValid())
	assert.True(t, InvoiceBuy.IsValid())
	assert.False(t, InvoiceType("rental").IsValid())
	assert.False(t, InvoiceType("").IsValid())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, InvoiceSales.ValidStatus("paid"))
	assert.True(t, InvoiceSales.ValidStatus("partially_paid"))
	assert.False(t, InvoiceSales.ValidStatus("active"))

	assert.True(t, InvoicePawn.ValidStatus("active"))
	assert.True(t, InvoicePawn.ValidStatus("redeemed"))
	assert.False(t, InvoicePawn.ValidStatus("paid"))
}

func TestComputedTotal(t *testing.T) {
	li := InvoiceItem{Quantity: 3, Price: 100, Discount: 25}

	assert.Equal(t, 275.0, li.ComputedTotal())
}

func TestComputedTotalIgnoresSuppliedTotal(t *testing.T) {
	li := InvoiceItem{Quantity: 1, Price: 500, Discount: 0, Total: 9999}

	assert.Equal(t, 500.0, li.ComputedTotal())
}
