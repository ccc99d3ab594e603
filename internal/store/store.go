// File: internal/store/store.go
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"user-accounts/internal/database"
	"user-accounts/internal/model"
)

var (
	// ErrUserNotFound 查無使用者
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken 由資料庫唯一性限制觸發，代表 Email 已被註冊
	ErrEmailTaken = errors.New("email already registered")
)

// UserStore 使用者資料的最小存取介面
type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
	// ListUsers 依 id 由小到大回傳符合條件的使用者
	ListUsers(ctx context.Context, f model.UserFilter) ([]model.User, error)
}

// Backend 具備健康檢查與關閉能力的 UserStore
type Backend interface {
	UserStore
	Ping(ctx context.Context) error
	Close() error
}

var (
	newPgxPool = database.NewPgxPool
	newSQLite  = database.NewSQLite
)

// Open 依 DATABASE_URL 建立對應的資料庫實作
func Open(ctx context.Context, dbURL string) (Backend, error) {
	kind, dsn, err := database.ParseURL(dbURL)
	if err != nil {
		return nil, err
	}
	switch kind {
	case database.DriverPostgres:
		db, err := newPgxPool(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(db), nil
	case database.DriverSQLite:
		db, err := newSQLite(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(db), nil
	case database.DriverMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", kind)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern 產生子字串比對用的 LIKE 樣式，使用者輸入的萬用字元按字面比對
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// filterClause 組出 WHERE 子句；placeholder 由呼叫端決定 ($n 或 ?)
func filterClause(f model.UserFilter, placeholder func(n int) string) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Search != "" {
		args = append(args, likePattern(f.Search))
		p := placeholder(len(args))
		conds = append(conds, fmt.Sprintf(`(name LIKE %s ESCAPE '\' OR email LIKE %s ESCAPE '\')`, p, p))
	}
	if f.Country != "" {
		args = append(args, f.Country)
		conds = append(conds, "country = "+placeholder(len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
