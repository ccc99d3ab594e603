// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"user-accounts/internal/dto"
	"user-accounts/internal/metrics"
	"user-accounts/internal/model"
	"user-accounts/internal/store"
	"user-accounts/internal/validation"

	"github.com/labstack/echo/v4"
)

// MsgEmailTaken Email 已被註冊時的訊息
const MsgEmailTaken = "Email already registered"

// RegisterHandler 建立新帳號
// @Summary     註冊使用者
// @Description 驗證所有欄位後建立帳號，回傳不含密碼的使用者資料
// @Tags        auth
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       body body     dto.RegisterRequest true "註冊資料"
// @Success     201  {object} dto.UserResponse
// @Failure     400  {object} dto.ValidationError
// @Failure     409  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/register [post]
func RegisterHandler(users store.UserStore, hasher PasswordHasher) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, dto.BodyError())
		}
		req.Normalize()
		// 一次回傳所有欄位錯誤
		if err := c.Validate(&req); err != nil {
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, dto.ValidationError{Errors: validation.FieldErrors(err)})
		}

		ctx := c.Request().Context()

		// 先檢查 Email，避免對注定衝突的請求做雜湊
		if _, err := users.GetUserByEmail(ctx, req.Email); err == nil {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			return c.JSON(http.StatusConflict, dto.HTTPError{Message: MsgEmailTaken})
		} else if !errors.Is(err, store.ErrUserNotFound) {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			return fmt.Errorf("lookup email: %w", err)
		}

		hash, err := hasher.Hash(ctx, req.Password)
		if err != nil {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			return fmt.Errorf("hash password: %w", err)
		}

		// 並發註冊時由資料庫唯一性限制決定勝負
		user, err := users.CreateUser(ctx, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         req.Role,
			Phone:        optional(req.Phone),
			City:         optional(req.City),
			Country:      optional(req.Country),
		})
		if err != nil {
			if errors.Is(err, store.ErrEmailTaken) {
				metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
				return c.JSON(http.StatusConflict, dto.HTTPError{Message: MsgEmailTaken})
			}
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			return fmt.Errorf("create user: %w", err)
		}

		metrics.RegistrationsTotal.WithLabelValues("created").Inc()
		return c.JSON(http.StatusCreated, dto.NewUserResponse(*user))
	}
}

// optional 空字串存成 NULL
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
