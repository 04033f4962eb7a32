package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// SettingNameRequest covers both category and material create/update, which
// carry nothing but a display name.
type SettingNameRequest struct {
	Name string `json:"name"`
}

func (req *SettingNameRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
	)
}
