// File: internal/dto/register_request.go
package dto

import "strings"

// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required" example:"Alice"`
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required,min=6" example:"Secret123!"`
	Role     string `json:"role" form:"role" validate:"required,oneof=admin staff" example:"staff"`
	Phone    string `json:"phone,omitempty" form:"phone" validate:"omitempty,max=50" example:"+886912345678"`
	City     string `json:"city,omitempty" form:"city" validate:"omitempty,max=100" example:"Taipei"`
	Country  string `json:"country,omitempty" form:"country" validate:"omitempty,max=100" example:"Taiwan"`
}

// Normalize 去除前後空白，密碼保持原樣
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.City = strings.TrimSpace(r.City)
	r.Country = strings.TrimSpace(r.Country)
}
