// Package cache provides pluggable result caching for the solve
// pipeline. Because the search is deterministic, a solve result is
// fully determined by its request, which makes results safe to cache
// indefinitely and share between processes.
//
// Three backends are provided: FileCache for CLI use (XDG cache dir),
// RedisCache for server deployments, and NullCache to disable caching.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional
// expiry. Implementations must be safe for concurrent use. A Get miss
// is not an error: it returns (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
