// File: internal/handler/users/list_users.go
package users

import (
	"fmt"
	"net/http"

	"user-accounts/internal/dto"
	"user-accounts/internal/model"
	"user-accounts/internal/store"

	"github.com/labstack/echo/v4"
)

// ListUsersHandler 列出使用者（僅限管理員），查詢參數原樣比對
// @Summary     List users
// @Description 依 id 由小到大列出使用者；search 比對姓名或 Email 的子字串，country 需完全相符，兩者同時提供時取交集
// @Tags        users
// @Produce     json
// @Param       search  query    string false "姓名或 Email 關鍵字"
// @Param       country query    string false "國家（完全相符）"
// @Success     200     {array}  dto.UserResponse
// @Failure     401     {object} dto.HTTPError
// @Failure     403     {object} dto.HTTPError
// @Failure     500     {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /users [get]
func ListUsersHandler(users store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		filter := model.UserFilter{
			Search:  c.QueryParam("search"),
			Country: c.QueryParam("country"),
		}
		list, err := users.ListUsers(c.Request().Context(), filter)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		return c.JSON(http.StatusOK, dto.NewUserResponses(list))
	}
}
