package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	KindMemory = "memory"
	KindRedis  = "redis"
	KindSQLite = "sqlite"
)

type Options struct {
	Kind string
	// Redis is required for KindRedis.
	Redis *redis.Client
	// Path is the database file for KindSQLite.
	Path       string
	RatePerSec float64
	Burst      int
}

// Open builds the backend named by opts.Kind.
func Open(ctx context.Context, opts Options) (Backend, error) {
	switch opts.Kind {
	case "", KindMemory:
		return NewMemoryBackend(opts.RatePerSec, opts.Burst), nil
	case KindRedis:
		return NewRedisBackend(RedisConfig{Client: opts.Redis}, max(int(opts.RatePerSec), 1))
	case KindSQLite:
		if opts.Path == "" {
			return nil, fmt.Errorf("sqlite backend requires a database path")
		}
		return NewSQLiteBackend(ctx, opts.Path, opts.RatePerSec, opts.Burst)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, opts.Kind)
	}
}
