// File: internal/router/error_handler.go
package router

import (
	"errors"
	"fmt"
	"net/http"

	"user-accounts/internal/dto"
	"user-accounts/internal/service"
	"user-accounts/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// NewHTTPErrorHandler 統一錯誤回應格式 {"message": "..."}；
// 未預期的錯誤只記錄在日誌，不把細節回傳給呼叫端
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, dto.HTTPError{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// echo 本身的錯誤（找不到路由、Bind 失敗、guard 拒絕等）
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound:
			return he.Code, "Not found"
		case http.StatusInternalServerError:
			logUnexpected(log, c, err)
			return he.Code, "internal server error"
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, store.ErrEmailTaken):
		return http.StatusConflict, "Email already registered"
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid or missing authentication token"
	}

	logUnexpected(log, c, err)
	return http.StatusInternalServerError, "internal server error"
}

func logUnexpected(log zerolog.Logger, c echo.Context, err error) {
	log.Error().
		Err(err).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")
}
