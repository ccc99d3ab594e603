// File: internal/model/user.go
package model

import "time"

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	Phone        *string   `db:"phone" json:"phone"`
	City         *string   `db:"city" json:"city"`
	Country      *string   `db:"country" json:"country"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// IsAdmin 判斷使用者是否為管理員
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserFilter 列表查詢條件，空字串代表不篩選
type UserFilter struct {
	Search  string
	Country string
}

// Principal 每個受保護請求經驗證後的身分
type Principal struct {
	ID    int
	Role  string
	Email string
	Name  string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// NewPrincipal 以資料庫中最新的使用者資料建立 Principal
func NewPrincipal(u User) Principal {
	return Principal{ID: u.ID, Role: u.Role, Email: u.Email, Name: u.Name}
}

// ValidRole 只接受 admin 與 staff
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}
