package ephemeral

import (
	"context"
	"time"
)

// Store holds opaque values under namespaced keys with a TTL.
type Store interface {
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error

	// Take returns the value and removes the key in one atomic step, so of
	// several concurrent callers at most one receives the value.
	Take(ctx context.Context, key string) ([]byte, error)
}
