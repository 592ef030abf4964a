package lookups

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// cachedList serves key from Redis and falls back to load on a miss, caching what load returns.
func cachedList[T any](ctx context.Context, redisRepository contracts.RedisRepository, key string, ttl time.Duration, load func(ctx context.Context) ([]T, error)) ([]T, error) {
	var items []T

	// Retrieve the list from Redis
	redisData, err := redisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if redisData == "" {
		// Fetch data from Postgres if not found in Redis
		items, err = load(ctx)
		if err != nil {
			return nil, err
		}

		// Cache the data in Redis
		err = redisRepository.Set(ctx, key, items, ttl)
		if err != nil {
			return nil, err
		}
		return items, nil
	}

	err = json.Unmarshal([]byte(redisData), &items)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return items, nil
}

// invalidate drops a cached list after a write. The write already succeeded, so a Redis failure
// is only logged and the list refreshes when its TTL runs out.
func invalidate(ctx context.Context, redisRepository contracts.RedisRepository, logger *zap.Logger, key string) {
	if err := redisRepository.Delete(ctx, key); err != nil {
		logger.Warn("lookup cache invalidation failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
}
