package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"user-accounts/internal/model"
	"user-accounts/internal/service"
	"user-accounts/internal/validation"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// helper to build echo context
func newJSONCtx(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newHasher() *service.Hasher {
	return service.NewHasher(bcrypt.MinCost, nil)
}

// fakeStore 以函式欄位模擬 store.UserStore
type fakeStore struct {
	CreateFn  func(ctx context.Context, u *model.User) (*model.User, error)
	ByEmailFn func(ctx context.Context, email string) (*model.User, error)
}

func (f *fakeStore) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	return f.CreateFn(ctx, u)
}

func (f *fakeStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.ByEmailFn(ctx, email)
}

func (f *fakeStore) GetUserByID(context.Context, int) (*model.User, error) {
	panic("not used")
}

func (f *fakeStore) ListUsers(context.Context, model.UserFilter) ([]model.User, error) {
	panic("not used")
}

type fakeHasher struct {
	hashErr error
	ok      bool
}

func (f fakeHasher) Hash(context.Context, string) (string, error) { return "h", f.hashErr }

func (f fakeHasher) Verify(context.Context, string, string) bool { return f.ok }

type fakeIssuer struct{ err error }

func (f fakeIssuer) IssueFor(model.User) (string, time.Time, error) {
	return "tok", time.Time{}, f.err
}
