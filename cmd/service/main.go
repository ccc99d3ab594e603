// File: cmd/service/main.go
// @title        User Accounts API
// @version      1.0
// @description  使用者帳號服務：註冊、登入、管理員列表與個人資料查詢
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 輸入 "Bearer {token}"
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	zlog "github.com/rs/zerolog/log"

	_ "user-accounts/docs" // 引入 swag 產出的 docs
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		zlog.Error().Err(err).Msg("service exited")
		exitFunc(1)
	}
}
