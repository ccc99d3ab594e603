package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

var (
	sqlxConnect = sqlx.ConnectContext
	mkdirAll    = os.MkdirAll
)

// SQLiteDSN 補上 WAL 與 busy timeout，讓同時寫入時等待鎖而非立即失敗
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on"
}

// NewSQLite 建立 SQLite 連線；檔案所在目錄不存在時自動建立
func NewSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	file := strings.TrimPrefix(path, "file:")
	if i := strings.Index(file, "?"); i >= 0 {
		file = file[:i]
	}
	if dir := filepath.Dir(file); dir != "." && dir != "" {
		if err := mkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("NewSQLite: %w", err)
		}
	}

	db, err := sqlxConnect(ctx, "sqlite3", SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("NewSQLite: %w", err)
	}
	return db, nil
}
