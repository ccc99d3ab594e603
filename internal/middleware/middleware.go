package middleware

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"user-accounts/internal/metrics"
	"user-accounts/internal/model"
	"user-accounts/internal/service"
	"user-accounts/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextPrincipalKey = "principal"

// Messages returned to callers. Every authentication failure shares one message.
const (
	MsgUnauthenticated = "Invalid or missing authentication token"
	MsgAdminRequired   = "Admin access required"
	MsgSelfOnly        = "You can only access your own details"
	MsgInvalidUserID   = "Invalid user id"
)

// Guard inspects a request and returns nil to continue or an error that ends it.
type Guard func(c echo.Context) error

// Chain runs guards in order before next; the first error stops the request.
func Chain(guards ...Guard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, g := range guards {
				if err := g(c); err != nil {
					return err
				}
			}
			return next(c)
		}
	}
}

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	Verify(token string) (*service.CustomClaims, error)
}

// UserLookup fetches the current user record behind a token.
type UserLookup interface {
	GetUserByID(ctx context.Context, id int) (*model.User, error)
}

func unauthenticated(guard string) error {
	metrics.GuardRejectionsTotal.WithLabelValues(guard, "401").Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, MsgUnauthenticated)
}

func forbidden(guard, msg string) error {
	metrics.GuardRejectionsTotal.WithLabelValues(guard, "403").Inc()
	return echo.NewHTTPError(http.StatusForbidden, msg)
}

// bearerToken returns the token of an "Authorization: Bearer <token>" header.
func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

// Authenticate verifies the bearer token, reloads the user it names and
// attaches the resulting principal to the request.
func Authenticate(tokens TokenVerifier, users UserLookup) Guard {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return unauthenticated("authenticate")
		}
		claims, err := tokens.Verify(token)
		if err != nil {
			return unauthenticated("authenticate")
		}
		user, err := users.GetUserByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return unauthenticated("authenticate")
			}
			return err
		}
		c.Set(ContextPrincipalKey, model.NewPrincipal(*user))
		return nil
	}
}

// PrincipalFrom returns the principal set by Authenticate.
func PrincipalFrom(c echo.Context) (model.Principal, bool) {
	p, ok := c.Get(ContextPrincipalKey).(model.Principal)
	return p, ok
}

// AdminOnly passes admins only; a missing principal is also forbidden.
func AdminOnly(c echo.Context) error {
	p, ok := PrincipalFrom(c)
	if !ok || !p.IsAdmin() {
		return forbidden("admin_only", MsgAdminRequired)
	}
	return nil
}

// SelfOrAdmin passes admins, then callers whose id equals the path parameter.
// Admins skip the id check; for everyone else a malformed id is a bad request.
func SelfOrAdmin(param string) Guard {
	return func(c echo.Context) error {
		p, ok := PrincipalFrom(c)
		if !ok {
			return unauthenticated("self_or_admin")
		}
		if p.IsAdmin() {
			return nil
		}
		id, err := ParseUserID(c.Param(param))
		if err != nil {
			metrics.GuardRejectionsTotal.WithLabelValues("self_or_admin", "400").Inc()
			return echo.NewHTTPError(http.StatusBadRequest, MsgInvalidUserID)
		}
		if p.ID != id {
			return forbidden("self_or_admin", MsgSelfOnly)
		}
		return nil
	}
}

var errInvalidUserID = errors.New("invalid user id")

// ParseUserID accepts only a non-empty string of ASCII digits with a value
// above zero. Values too large for int saturate to math.MaxInt, which no
// store holds.
func ParseUserID(s string) (int, error) {
	if s == "" {
		return 0, errInvalidUserID
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errInvalidUserID
		}
	}
	id, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt, nil
	}
	if err != nil || id <= 0 {
		return 0, errInvalidUserID
	}
	return id, nil
}
