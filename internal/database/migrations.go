// File: internal/database/migrations.go
package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

type migrateInstance interface {
	Up() error
	Down() error
}

var (
	sqlOpenDB              = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	sqliteWithInstanceFn   = sqlite3.WithInstance
	iofsNewFn              = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
)

// RunMigrations 嵌入並執行 SQL migration (up all)
func RunMigrations(dbURL string) error {
	return withMigrator(dbURL, func(m migrateInstance) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate up: %w", err)
		}
		return nil
	})
}

// RollbackAll 退回所有 migration (down to version 0)
func RollbackAll(dbURL string) error {
	return withMigrator(dbURL, func(m migrateInstance) error {
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate down: %w", err)
		}
		return nil
	})
}

func withMigrator(dbURL string, fn func(migrateInstance) error) error {
	kind, dsn, err := ParseURL(dbURL)
	if err != nil {
		return err
	}

	var sqlDriverName, dir string
	switch kind {
	case DriverMemory:
		// 記憶體資料庫不需要 migration
		return nil
	case DriverPostgres:
		sqlDriverName, dir = "pgx", "migrations/postgres"
	case DriverSQLite:
		sqlDriverName, dir, dsn = "sqlite3", "migrations/sqlite", SQLiteDSN(dsn)
	}

	// 建立 *sql.DB (pgx stdlib / go-sqlite3)
	sqlDB, err := sqlOpenDB(sqlDriverName, dsn)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	var driver dbdriver.Driver
	if kind == DriverPostgres {
		driver, err = postgresWithInstanceFn(sqlDB, &postgres.Config{})
	} else {
		driver, err = sqliteWithInstanceFn(sqlDB, &sqlite3.Config{})
	}
	if err != nil {
		return err
	}

	sourceDriver, err := iofsNewFn(migrationsFS, dir)
	if err != nil {
		return err
	}

	m, err := migrateNewWithInstance("iofs", sourceDriver, string(kind), driver)
	if err != nil {
		return err
	}
	return fn(m)
}
