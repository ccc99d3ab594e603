// File: internal/router/router.go
package router

import (
	"user-accounts/internal/cache"
	"user-accounts/internal/handler"
	"user-accounts/internal/handler/auth"
	"user-accounts/internal/handler/users"
	"user-accounts/internal/logger"
	"user-accounts/internal/metrics"
	"user-accounts/internal/middleware"
	"user-accounts/internal/service"
	"user-accounts/internal/store"
	"user-accounts/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Deps 路由需要的所有相依元件
type Deps struct {
	Users  store.Backend
	Cache  cache.Cache // nil 代表未啟用 Redis
	Hasher auth.PasswordHasher
	Tokens *service.TokenIssuer
	Logger zerolog.Logger
	// Metrics 為 true 時掛上 Prometheus 中介層與 /metrics
	Metrics bool
}

// New 建立 echo 實例並掛上全域中介層與所有路由
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(logger.RequestLogger(d.Logger))
	e.Use(echomiddleware.Recover())
	if d.Metrics {
		e.Use(metrics.Middleware())
	}

	Setup(e, d)
	return e
}

// Setup 註冊所有路由
func Setup(e *echo.Echo, d Deps) {
	api := e.Group("/api")

	// 就緒檢查（不需登入）
	api.GET("/ping", handler.PingHandler(d.Users, d.Cache, d.Logger))

	// 註冊與登入
	api.POST("/auth/register", auth.RegisterHandler(d.Users, d.Hasher))
	api.POST("/auth/login", auth.LoginHandler(d.Users, d.Hasher, d.Tokens))

	// 受保護路由：先驗證身分，再檢查權限
	authenticate := middleware.Authenticate(d.Tokens, d.Users)
	api.GET("/users", users.ListUsersHandler(d.Users),
		middleware.Chain(authenticate, middleware.AdminOnly))
	api.GET("/users/:id", users.GetUserHandler(d.Users),
		middleware.Chain(authenticate, middleware.SelfOrAdmin("id")))

	if d.Metrics {
		e.GET("/metrics", metrics.Handler())
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
