// File: internal/config/config.go
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config 啟動時建立一次，再以指標傳給各元件
type Config struct {
	Port     string `env:"PORT, default=8080"`
	Env      string `env:"ENV, default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	DatabaseURL   string `env:"DATABASE_URL, default=sqlite://data/app.sqlite"`
	RunMigrations bool   `env:"RUN_MIGRATIONS, default=true"`

	JWTSecret   string `env:"JWT_SECRET, required"`
	BcryptCost  int    `env:"BCRYPT_COST, default=10"`
	WorkerCount int    `env:"WORKER_COUNT, default=4"`

	MetricsEnabled bool `env:"METRICS_ENABLED, default=true"`

	Redis RedisConfig
}

// RedisConfig Addr 為空時不啟用 Redis
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

func (c *Config) Development() bool {
	return c.Env == "development"
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

var loadDotEnv = godotenv.Load

// Load 先讀取 .env（若存在），再由環境變數填入設定
func Load(ctx context.Context) (*Config, error) {
	if err := loadDotEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom 由指定的 Lookuper 讀取設定並驗證
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL must not be empty")
	}
	if c.WorkerCount <= 0 {
		return fmt.Errorf("invalid WORKER_COUNT: %d", c.WorkerCount)
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("invalid BCRYPT_COST: %d", c.BcryptCost)
	}
	return nil
}
