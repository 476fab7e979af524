package cache

import (
	"context"
	"fmt"
)

// Backend names accepted by [Open].
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Options selects and configures a cache backend.
type Options struct {
	Backend  string // none, file or redis; empty means none
	Dir      string // file backend directory
	RedisURL string // redis backend URL
}

// Open creates the cache described by opts.
func Open(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case "", BackendNone:
		return NewNullCache(), nil
	case BackendFile:
		if opts.Dir == "" {
			return nil, fmt.Errorf("file cache: directory not set")
		}
		c, err := NewFileCache(opts.Dir)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendRedis:
		if opts.RedisURL == "" {
			return nil, fmt.Errorf("redis cache: url not set")
		}
		return NewRedisCache(ctx, opts.RedisURL)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
}
