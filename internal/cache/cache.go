package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Cache is the subset of the Redis client the service depends on.
// The readiness probe pings it; FakeCache replaces it in tests.
type Cache interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type FakeCache struct {
	PingFn  func(ctx context.Context) *redis.StatusCmd
	CloseFn func() error
}

// Ping runs PingFn or panics.
func (f *FakeCache) Ping(ctx context.Context) *redis.StatusCmd {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

// Close runs CloseFn or is a no-op.
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
