// File: internal/dto/login_response.go
package dto

import "time"

// swagger:model dto.LoginResponse
type LoginResponse struct {
	Token     string        `json:"token" example:"eyJhbGciOi..."`
	ExpiresAt time.Time     `json:"expires_at" example:"2025-05-09T15:04:05Z"`
	User      LoginUserView `json:"user"`
}

// LoginUserView 登入回應只帶基本身分欄位
// swagger:model dto.LoginUserView
type LoginUserView struct {
	ID    int    `json:"id" example:"1"`
	Name  string `json:"name" example:"Alice"`
	Email string `json:"email" example:"alice@example.com"`
	Role  string `json:"role" example:"staff"`
}
