// File: internal/service/password.go
package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"

	"user-accounts/internal/worker"

	"golang.org/x/crypto/bcrypt"
)

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// bcrypt 只接受 72 bytes 以內的輸入
const bcryptMaxInput = 72

// bcryptInput 超過上限的密碼先以 SHA-256 摘要，72 bytes 以內維持原樣
func bcryptInput(password string) []byte {
	if len(password) <= bcryptMaxInput {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte("sha256:" + base64.StdEncoding.EncodeToString(sum[:]))
}

// Hasher 以 bcrypt 雜湊密碼，並透過 worker pool 限制同時進行的運算數量
type Hasher struct {
	cost int
	pool worker.Pool
}

func NewHasher(cost int, pool worker.Pool) *Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost, pool: pool}
}

// Hash 接收明文密碼，回傳 bcrypt 哈希字串
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	var (
		hash []byte
		err  error
	)
	if runErr := h.run(ctx, func() {
		hash, err = bcryptGenerateFromPassword(bcryptInput(password), h.cost)
	}); runErr != nil {
		return "", runErr
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify 比對明文密碼與哈希；密碼錯誤或無法比對時回傳 false
func (h *Hasher) Verify(ctx context.Context, password, hash string) bool {
	ok := false
	if err := h.run(ctx, func() {
		ok = bcryptCompareHashAndPassword([]byte(hash), bcryptInput(password)) == nil
	}); err != nil {
		return false
	}
	return ok
}

// run 在 pool 中執行 fn 並等待完成；沒有 pool 時直接執行
func (h *Hasher) run(ctx context.Context, fn func()) error {
	if h.pool == nil {
		fn()
		return nil
	}
	done := make(chan struct{})
	if err := h.pool.Submit(ctx, func() {
		defer close(done)
		fn()
	}); err != nil {
		return err
	}
	<-done
	return nil
}
