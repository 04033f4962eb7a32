package response

import "github.com/shwenadi/goldshop-api/internal/domain"

type LoginResponse struct {
	Token string           `json:"token"`
	User  domain.AdminUser `json:"user"`
}
