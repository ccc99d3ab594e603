package database

import (
	"fmt"
	"strings"
)

// Driver 資料庫種類
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite3"
	DriverMemory   Driver = "memory"
)

// ParseURL 依 DATABASE_URL 的 scheme 判斷資料庫種類並回傳 driver 專用的 DSN
//
//	postgres://... / postgresql://...  → Postgres，DSN 原樣保留
//	sqlite://data/app.sqlite           → SQLite 檔案 data/app.sqlite
//	file:data/app.sqlite?mode=rwc      → SQLite，DSN 原樣保留
//	memory://                          → 記憶體
func ParseURL(url string) (Driver, string, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres, url, nil
	case strings.HasPrefix(url, "sqlite://"):
		path := strings.TrimPrefix(url, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite url without path: %q", url)
		}
		return DriverSQLite, path, nil
	case strings.HasPrefix(url, "file:"):
		return DriverSQLite, url, nil
	case strings.HasPrefix(url, "memory://"):
		return DriverMemory, "", nil
	}
	return "", "", fmt.Errorf("unsupported database url: %q", url)
}
