package contracts

import (
	"context"
	"time"
)

// RedisRepository is the small key/value surface the caches, sessions and locks are built on.
// Get returns an empty string for a missing key.
type RedisRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Delete(ctx context.Context, key string) error
	Expire(ctx context.Context, key string, exp time.Duration) (bool, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
}
