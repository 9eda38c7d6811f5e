package ephemeral

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shandysiswandi/tgauth/internal/pkg/goerror"
)

// DefaultTimeout bounds a single Redis call when RedisConfig.Timeout is zero.
const DefaultTimeout = 2 * time.Second

type RedisConfig struct {
	Client redis.UniversalClient
	// Timeout bounds every call independently of the caller's deadline.
	Timeout time.Duration
}

// Redis implements Store with SET EX, GET, DEL and GETDEL.
type Redis struct {
	client  redis.UniversalClient
	timeout time.Duration
}

func NewRedis(cfg RedisConfig) *Redis {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Redis{client: cfg.Client, timeout: timeout}
}

func (r *Redis) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("ephemeral: ttl must be positive for key %q", key)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return unavailable("set", err)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	val, err := r.client.Get(ctx, key).Bytes()
	return r.result("get", val, err)
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return unavailable("del", err)
	}
	return nil
}

func (r *Redis) Take(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	val, err := r.client.GetDel(ctx, key).Bytes()
	return r.result("getdel", val, err)
}

func (r *Redis) result(op string, val []byte, err error) ([]byte, error) {
	if errors.Is(err, redis.Nil) {
		return nil, goerror.ErrNotFound
	}
	if err != nil {
		return nil, unavailable(op, err)
	}
	return val, nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: redis %s: %v", goerror.ErrUnavailable, op, err)
}
