package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"user-accounts/internal/dto"
	"user-accounts/internal/model"
	"user-accounts/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newCtx(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func ptr(s string) *string { return &s }

func seeded(t *testing.T) *store.MemoryStore {
	t.Helper()
	s := store.NewMemoryStore()
	for _, u := range []model.User{
		{Name: "Alice", Email: "alice@example.com", Role: model.RoleAdmin, Country: ptr("TW")},
		{Name: "Bob", Email: "bob@example.com", Role: model.RoleStaff, Country: ptr("JP")},
		{Name: "Carol", Email: "carol@corp.io", Role: model.RoleStaff, Country: ptr("TW")},
	} {
		u.PasswordHash = "hash"
		_, err := s.CreateUser(context.Background(), &u)
		require.NoError(t, err)
	}
	return s
}

type errStore struct {
	store.UserStore
	err error
}

func (s errStore) ListUsers(context.Context, model.UserFilter) ([]model.User, error) {
	return nil, s.err
}

func (s errStore) GetUserByID(context.Context, int) (*model.User, error) {
	return nil, s.err
}

func names(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var list []dto.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	out := make([]string, 0, len(list))
	for _, u := range list {
		out = append(out, u.Name)
	}
	return out
}

func TestListUsersHandler(t *testing.T) {
	h := ListUsersHandler(seeded(t))

	cases := []struct {
		target string
		want   []string
	}{
		{"/users", []string{"Alice", "Bob", "Carol"}},
		{"/users?country=TW", []string{"Alice", "Carol"}},
		{"/users?search=example", []string{"Alice", "Bob"}},
		{"/users?search=example&country=TW", []string{"Alice"}},
		{"/users?search=%25", []string{}},
		{"/users?country=tw", []string{}},
		{"/users?country=TW%20", []string{}},
		{"/users?search=%20", []string{}},
		{"/users?search=&country=", []string{"Alice", "Bob", "Carol"}},
	}
	for _, tc := range cases {
		ctx, rec := newCtx(tc.target)
		require.NoError(t, h(ctx), tc.target)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, tc.want, names(t, rec), tc.target)
		require.NotContains(t, rec.Body.String(), "hash")
	}

	// 空結果回傳 [] 而非 null
	ctx, rec := newCtx("/users?country=XX")
	require.NoError(t, h(ctx))
	require.JSONEq(t, `[]`, rec.Body.String())

	boom := errors.New("boom")
	ctx, _ = newCtx("/users")
	require.ErrorIs(t, ListUsersHandler(errStore{err: boom})(ctx), boom)
}

func TestGetUserHandler(t *testing.T) {
	h := GetUserHandler(seeded(t))

	ctx, rec := newCtx("/users/2")
	ctx.SetParamNames("id")
	ctx.SetParamValues("2")
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	var u dto.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	require.Equal(t, "bob@example.com", u.Email)

	for _, bad := range []string{"abc", "0", "-1", "2x"} {
		ctx, rec = newCtx("/users/" + bad)
		ctx.SetParamNames("id")
		ctx.SetParamValues(bad)
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code, bad)
	}

	ctx, rec = newCtx("/users/99")
	ctx.SetParamNames("id")
	ctx.SetParamValues("99")
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)

	boom := errors.New("boom")
	ctx, _ = newCtx("/users/1")
	ctx.SetParamNames("id")
	ctx.SetParamValues("1")
	require.ErrorIs(t, GetUserHandler(errStore{err: boom})(ctx), boom)
}
