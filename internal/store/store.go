package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("key not found")

// Store is a flat key-value store. Set always overwrites; there is no
// versioning or compare-and-swap, so the last writer wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

type Options struct {
	Backend       string
	RedisURL      string
	DatabaseURL   string
	MongoURI      string
	MongoDatabase string
	TTL           time.Duration // redis only; zero keeps keys forever
}

// Open connects to the configured backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendMemory:
		return NewMemory(), nil
	case BackendRedis:
		return OpenRedis(ctx, opts.RedisURL, opts.TTL)
	case BackendPostgres:
		pg, err := OpenPostgres(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, err
		}
		return pg, nil
	case BackendMongo:
		return OpenMongo(ctx, opts.MongoURI, opts.MongoDatabase)
	}
	return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
}
