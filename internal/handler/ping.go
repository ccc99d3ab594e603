// File: internal/handler/ping.go
package handler

import (
	"context"
	"net/http"

	"user-accounts/internal/cache"
	"user-accounts/internal/dto"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// Pinger 可回報連線狀態的資料來源
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingHandler 就緒檢查，不需認證
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與（若有設定）Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     503 {object} dto.HTTPError
// @Router      /ping [get]
func PingHandler(db Pinger, cch cache.Cache, log zerolog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("dependency", "database").Msg("readiness check failed")
			return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "database unhealthy"})
		}
		// Redis 未設定時略過
		if cch != nil {
			if err := cch.Ping(ctx).Err(); err != nil {
				log.Warn().Err(err).Str("dependency", "redis").Msg("readiness check failed")
				return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "cache unhealthy"})
			}
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
