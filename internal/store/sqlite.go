// File: internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"user-accounts/internal/model"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

// SQLiteStore 以 sqlx + go-sqlite3 實作 UserStore
type SQLiteStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewSQLiteStore(db *sqlx.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

func (s *SQLiteStore) GetUserByID(ctx context.Context, userID int) (*model.User, error) {
	u := &model.User{}
	err := s.db.GetContext(ctx, u, `SELECT `+userColumns+` FROM users WHERE id = ?`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := s.db.GetContext(ctx, u, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func (s *SQLiteStore) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	created := *u
	created.CreatedAt = s.now().UTC()
	created.UpdatedAt = created.CreatedAt

	res, err := s.db.NamedExecContext(ctx,
		`INSERT INTO users (name, email, password_hash, role, phone, city, country, created_at, updated_at)
		 VALUES (:name, :email, :password_hash, :role, :phone, :city, :country, :created_at, :updated_at)`,
		&created,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	created.ID = int(id)
	return &created, nil
}

func (s *SQLiteStore) ListUsers(ctx context.Context, f model.UserFilter) ([]model.User, error) {
	where, args := filterClause(f, func(int) string { return "?" })
	users := []model.User{}
	if err := s.db.SelectContext(ctx, &users,
		`SELECT `+userColumns+` FROM users`+where+` ORDER BY id ASC`,
		args...,
	); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
