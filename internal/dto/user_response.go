// File: internal/dto/user_response.go
package dto

import (
	"time"

	"user-accounts/internal/model"
)

// swagger:model dto.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	Role      string    `json:"role" example:"staff"`
	Phone     *string   `json:"phone" example:"+886912345678"`
	City      *string   `json:"city" example:"Taipei"`
	Country   *string   `json:"country" example:"Taiwan"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-05-01T15:04:05Z"`
}

// NewUserResponse 轉換為對外安全的使用者資料（不含密碼）
func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Phone:     u.Phone,
		City:      u.City,
		Country:   u.Country,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

func NewLoginUserView(u model.User) LoginUserView {
	return LoginUserView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
