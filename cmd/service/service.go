// File: cmd/service/service.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"user-accounts/internal/cache"
	"user-accounts/internal/config"
	"user-accounts/internal/database"
	"user-accounts/internal/logger"
	"user-accounts/internal/router"
	"user-accounts/internal/service"
	"user-accounts/internal/store"
	"user-accounts/internal/worker"

	"github.com/labstack/echo/v4"
)

const shutdownTimeout = 10 * time.Second

var (
	loadConfig      = config.Load
	openStore       = store.Open
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer  = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	exitFunc        = os.Exit
)

// run 載入設定、建立相依元件並啟動 HTTP 服務，直到 ctx 結束或伺服器錯誤
func run(ctx context.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Development()})

	users, err := openStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer users.Close()

	if cfg.RunMigrations {
		if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration 執行失敗: %w", err)
		}
	}

	// Redis 為選用元件，只參與就緒檢查
	var cch cache.Cache
	if cfg.Redis.Addr != "" {
		c, err := newRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %w", err)
		}
		defer c.Close()
		cch = c
	}

	// bcrypt 交給固定數量的 worker 執行
	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	e := router.New(router.Deps{
		Users:   users,
		Cache:   cch,
		Hasher:  service.NewHasher(cfg.BcryptCost, wp),
		Tokens:  service.NewTokenIssuer(cfg.JWTSecret),
		Logger:  log,
		Metrics: cfg.MetricsEnabled,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("server starting")
		errCh <- startServer(e, cfg.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownServer(shutdownCtx, e); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
