// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"user-accounts/internal/dto"
	"user-accounts/internal/metrics"
	"user-accounts/internal/store"
	"user-accounts/internal/validation"

	"github.com/labstack/echo/v4"
)

// MsgInvalidCredentials 帳號不存在與密碼錯誤共用同一個訊息
const MsgInvalidCredentials = "Invalid email or password"

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌、到期時間與基本使用者資料
// @Tags        auth
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       body body     dto.LoginRequest true "登入資料"
// @Success     200  {object} dto.LoginResponse
// @Failure     400  {object} dto.ValidationError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(users store.UserStore, hasher PasswordHasher, tokens TokenIssuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, dto.BodyError())
		}
		req.Normalize()
		// 再驗證結構化參數 (go-playground/validator)
		if err := c.Validate(&req); err != nil {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, dto.ValidationError{Errors: validation.FieldErrors(err)})
		}

		ctx := c.Request().Context()

		// 撈使用者資料
		user, err := users.GetUserByEmail(ctx, req.Email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				metrics.LoginsTotal.WithLabelValues("rejected").Inc()
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: MsgInvalidCredentials})
			}
			metrics.LoginsTotal.WithLabelValues("error").Inc()
			return fmt.Errorf("lookup email: %w", err)
		}

		// 驗證密碼
		if !hasher.Verify(ctx, req.Password, user.PasswordHash) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: MsgInvalidCredentials})
		}

		// 發行存取令牌
		token, expiresAt, err := tokens.IssueFor(*user)
		if err != nil {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
			return fmt.Errorf("issue token: %w", err)
		}

		metrics.LoginsTotal.WithLabelValues("success").Inc()
		return c.JSON(http.StatusOK, dto.LoginResponse{
			Token:     token,
			ExpiresAt: expiresAt,
			User:      dto.NewLoginUserView(*user),
		})
	}
}
