// File: internal/handler/auth/deps.go
package auth

import (
	"context"
	"time"

	"user-accounts/internal/model"
)

// PasswordHasher 雜湊與比對密碼
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, hash string) bool
}

// TokenIssuer 為使用者簽發存取令牌
type TokenIssuer interface {
	IssueFor(u model.User) (string, time.Time, error)
}
