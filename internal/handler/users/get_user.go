// File: internal/handler/users/get_user.go
package users

import (
	"errors"
	"fmt"
	"net/http"

	"user-accounts/internal/dto"
	"user-accounts/internal/middleware"
	"user-accounts/internal/store"

	"github.com/labstack/echo/v4"
)

// GetUserHandler 透過使用者 ID 取得使用者資訊（本人或管理員）
// @Summary     Get a user by ID
// @Description 透過 ID 查詢並回傳使用者詳細資料，一般使用者只能查詢自己
// @Tags        users
// @Produce     json
// @Param       id   path      int  true  "使用者 ID"
// @Success     200  {object}  dto.UserResponse
// @Failure     400  {object}  dto.HTTPError  "參數錯誤"
// @Failure     401  {object}  dto.HTTPError  "未認證"
// @Failure     403  {object}  dto.HTTPError  "無權限"
// @Failure     404  {object}  dto.HTTPError  "使用者不存在"
// @Failure     500  {object}  dto.HTTPError  "伺服器錯誤"
// @Security    BearerAuth
// @Router      /users/{id} [get]
func GetUserHandler(users store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		// 解析 path 參數，管理員也必須提供合法 ID
		id, err := middleware.ParseUserID(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: middleware.MsgInvalidUserID})
		}

		user, err := users.GetUserByID(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "User not found"})
			}
			return fmt.Errorf("get user %d: %w", id, err)
		}
		return c.JSON(http.StatusOK, dto.NewUserResponse(*user))
	}
}
