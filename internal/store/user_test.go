// File: internal/store/user_test.go
package store

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"user-accounts/internal/database"
	"user-accounts/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

// fakeUserRow 支援兩種 Scan 呼叫場景：
// 1) len(dest)==10 → 完整使用者欄位
// 2) len(dest)==3  → CreateUser (id, created_at, updated_at)
type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 10:
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(*string) = u.Role
		*dest[5].(**string) = u.Phone
		*dest[6].(**string) = u.City
		*dest[7].(**string) = u.Country
		*dest[8].(*time.Time) = u.CreatedAt
		*dest[9].(*time.Time) = u.UpdatedAt
	case 3:
		*dest[0].(*int) = u.ID
		*dest[1].(*time.Time) = u.CreatedAt
		*dest[2].(*time.Time) = u.UpdatedAt
	default:
		panic("fakeUserRow.Scan: unexpected dest count")
	}
	return nil
}

// fakeUserRows 依序回傳 users，可於最後回報 err
type fakeUserRows struct {
	users   []*model.User
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeUserRows) Close()                                       { r.closed = true }
func (r *fakeUserRows) Err() error                                   { return r.err }
func (r *fakeUserRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeUserRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeUserRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeUserRows) RawValues() [][]byte                          { return nil }
func (r *fakeUserRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeUserRows) Next() bool {
	if r.idx >= len(r.users) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeUserRows) Scan(dest ...any) error {
	row := &fakeUserRow{user: r.users[r.idx-1], scanErr: r.scanErr}
	return row.Scan(dest...)
}

/* ---------- 完整測試 ---------- */

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	sample := &model.User{
		ID:           7,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		Role:         model.RoleAdmin,
		Country:      strPtr("TW"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	/* --- GetUserByID --- */
	t.Run("GetUserByID success", func(t *testing.T) {
		s := NewPostgresStore(&database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "WHERE id = $1")
				require.Equal(t, []any{7}, args)
				return &fakeUserRow{user: sample}
			},
		})
		u, err := s.GetUserByID(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, sample, u)
		require.True(t, u.IsAdmin())
	})

	t.Run("GetUserByID not found", func(t *testing.T) {
		s := NewPostgresStore(&database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		})
		_, err := s.GetUserByID(ctx, 1)
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("GetUserByID outside int4", func(t *testing.T) {
		// FakeDB 未設定 QueryRowFn，若送出查詢會 panic
		s := NewPostgresStore(&database.FakeDB{})
		for _, id := range []int{0, -1, math.MaxInt32 + 1, 3000000000, math.MaxInt} {
			_, err := s.GetUserByID(ctx, id)
			require.ErrorIs(t, err, ErrUserNotFound, id)
		}
	})

	t.Run("GetUserByID db error", func(t *testing.T) {
		s := NewPostgresStore(&database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeUserRow{scanErr: errors.New("conn reset")}
			},
		})
		_, err := s.GetUserByID(ctx, 1)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrUserNotFound)
		require.Contains(t, err.Error(), "GetUserByID")
	})

	/* --- GetUserByEmail --- */
	t.Run("GetUserByEmail", func(t *testing.T) {
		s := NewPostgresStore(&database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "WHERE email = $1")
				if args[0] == sample.Email {
					return &fakeUserRow{user: sample}
				}
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		})
		u, err := s.GetUserByEmail(ctx, sample.Email)
		require.NoError(t, err)
		require.Equal(t, sample.ID, u.ID)

		_, err = s.GetUserByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	/* --- CreateUser --- */
	t.Run("CreateUser success", func(t *testing.T) {
		s := NewPostgresStore(&database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.True(t, strings.HasPrefix(strings.TrimSpace(sql), "INSERT INTO users"))
				require.Len(t, args, 7)
				return &fakeUserRow{user: &model.User{ID: 11, CreatedAt: now, UpdatedAt: now}}
			},
		})
		in := &model.User{Name: "Bob", Email: "bob@example.com", PasswordHash: "h", Role: model.RoleStaff}
		u, err := s.CreateUser(ctx, in)
		require.NoError(t, err)
		require.Equal(t, 11, u.ID)
		require.Equal(t, now, u.CreatedAt)
		require.Equal(t, "Bob", u.Name)
		require.Zero(t, in.ID, "input is not mutated")
	})

	t.Run("CreateUser unique violation", func(t *testing.T) {
		s := NewPostgresStore(&database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeUserRow{scanErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}}
			},
		})
		_, err := s.CreateUser(ctx, &model.User{Email: "dup@example.com"})
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("CreateUser other error", func(t *testing.T) {
		s := NewPostgresStore(&database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeUserRow{scanErr: &pgconn.PgError{Code: "23514"}}
			},
		})
		_, err := s.CreateUser(ctx, &model.User{Email: "x@example.com"})
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrEmailTaken)
	})

	/* --- ListUsers --- */
	t.Run("ListUsers builds filters", func(t *testing.T) {
		rows := &fakeUserRows{users: []*model.User{sample}}
		s := NewPostgresStore(&database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "name LIKE $1")
				require.Contains(t, sql, "country = $2")
				require.True(t, strings.HasSuffix(sql, "ORDER BY id ASC"))
				require.Equal(t, []any{"%ali%", "TW"}, args)
				return rows, nil
			},
		})
		users, err := s.ListUsers(ctx, model.UserFilter{Search: "ali", Country: "TW"})
		require.NoError(t, err)
		require.Len(t, users, 1)
		require.Equal(t, "Alice", users[0].Name)
		require.True(t, rows.closed)
	})

	t.Run("ListUsers without filters returns empty slice", func(t *testing.T) {
		s := NewPostgresStore(&database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.NotContains(t, sql, "WHERE")
				require.Empty(t, args)
				return &fakeUserRows{}, nil
			},
		})
		users, err := s.ListUsers(ctx, model.UserFilter{})
		require.NoError(t, err)
		require.NotNil(t, users)
		require.Empty(t, users)
	})

	t.Run("ListUsers errors", func(t *testing.T) {
		s := NewPostgresStore(&database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("q") },
		})
		_, err := s.ListUsers(ctx, model.UserFilter{})
		require.Error(t, err)

		s = NewPostgresStore(&database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeUserRows{users: []*model.User{sample}, scanErr: errors.New("scan")}, nil
			},
		})
		_, err = s.ListUsers(ctx, model.UserFilter{})
		require.Error(t, err)

		s = NewPostgresStore(&database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeUserRows{err: errors.New("rows")}, nil
			},
		})
		_, err = s.ListUsers(ctx, model.UserFilter{})
		require.Error(t, err)
	})

	/* --- Ping / Close --- */
	t.Run("Ping and Close", func(t *testing.T) {
		closed := false
		s := NewPostgresStore(&database.FakeDB{
			PingFn:  func(context.Context) error { return errors.New("down") },
			CloseFn: func() { closed = true },
		})
		require.Error(t, s.Ping(ctx))
		require.NoError(t, s.Close())
		require.True(t, closed)
	})
}
