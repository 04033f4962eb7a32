package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

var itemCategories = []interface{}{"rings", "necklaces", "bracelets", "earrings", "watches"}

// CreateItemRequest arrives as a multipart form so an image file can ride
// along with the fields.
type CreateItemRequest struct {
	Name        string `form:"name"`
	Category    string `form:"category"`
	Description string `form:"description"`
	Material    string `form:"material"`
	Stock       int    `form:"stock"`
}

func (req *CreateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Category, validation.Required, validation.In(itemCategories...)),
		validation.Field(&req.Material, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.Stock, validation.Min(0)),
	)
}

// UpdateItemRequest is a partial edit; absent fields stay untouched.
type UpdateItemRequest struct {
	Name        *string `form:"name"`
	Category    *string `form:"category"`
	Description *string `form:"description"`
	Material    *string `form:"material"`
	Stock       *int    `form:"stock"`
}

func (req *UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&req.Category, validation.In(itemCategories...)),
		validation.Field(&req.Material, validation.Length(1, 50)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}

type SetStockRequest struct {
	Stock *int `json:"stock"`
}

func (req *SetStockRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Stock, validation.NotNil, validation.Min(0)),
	)
}
