package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type InvoiceItemRequest struct {
	ItemID     *string  `json:"item_id"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Quantity   int      `json:"quantity"`
	Price      float64  `json:"price"`
	Discount   float64  `json:"discount"`
	ReturnType string   `json:"return_type"`
	Weight     *float64 `json:"weight"`
}

func (item *InvoiceItemRequest) Validate() error {
	return validation.ValidateStruct(
		item,
		validation.Field(&item.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&item.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&item.Price, validation.Required, validation.Min(0.0)),
		validation.Field(&item.Discount, validation.Min(0.0)),
	)
}

type CreateInvoiceRequest struct {
	CustomerName    string               `json:"customer_name"`
	CustomerPhone   string               `json:"customer_phone"`
	CustomerAddress string               `json:"customer_address"`
	Total           float64              `json:"total"`
	Type            string               `json:"type"`
	Status          string               `json:"status"`
	DueDate         string               `json:"due_date" format:"YYYY-MM-DD"`
	Notes           string               `json:"notes"`
	Items           []InvoiceItemRequest `json:"items"`
}

func (req *CreateInvoiceRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.CustomerName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Type, validation.Required, validation.In("sales", "pawn", "buy")),
		validation.Field(&req.Total, validation.Min(0.0)),
		validation.Field(&req.Items, validation.Required),
	)
	if err != nil {
		return err
	}

	for i := range req.Items {
		if err = req.Items[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}
