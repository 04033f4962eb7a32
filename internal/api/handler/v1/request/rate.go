package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type AppendRateRequest struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
	Time  string  `json:"time"`
}

func (req *AppendRateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Type, validation.Required, validation.In("gold", "exchange_rate")),
		validation.Field(&req.Value, validation.Required, validation.Min(0.0)),
		validation.Field(&req.Time, validation.Required, validation.Length(1, 10)),
	)
}
