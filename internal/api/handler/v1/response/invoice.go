package response

// CreateInvoiceResponse returns the generated identifiers; clients look the
// invoice up by either one afterwards.
type CreateInvoiceResponse struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
}
