// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"justnest/config"

	"github.com/avast/retry-go/v4"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	// PubSubClient carries real-time notifications between instances.
	PubSubClient *redis.Client
	// AuthCacheClient is the dedicated client for revoked-token bookkeeping.
	AuthCacheClient *redis.Client
)

// RedisEnabled reports whether a Redis address is configured.
func RedisEnabled() bool {
	return config.AppConfig.RedisAddr != ""
}

// InitRedis connects the pub/sub and auth clients. It is a no-op without REDIS_ADDR.
func InitRedis(ctx context.Context) error {
	if !RedisEnabled() {
		return nil
	}
	var err error
	if PubSubClient, err = connectRedis(ctx, config.AppConfig.RedisPubSubDB); err != nil {
		return fmt.Errorf("redis pubsub: %w", err)
	}
	if AuthCacheClient, err = connectRedis(ctx, config.AppConfig.RedisAuthDB); err != nil {
		return fmt.Errorf("redis auth cache: %w", err)
	}
	return nil
}

func connectRedis(ctx context.Context, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	err := retry.Do(
		func() error {
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			return client.Ping(pingCtx).Err()
		},
		retry.Context(ctx),
		retry.Attempts(5),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			GetLogger().Warn("Redis ping failed, retrying", zap.Int("db", db), zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// CloseRedis closes whichever clients were opened.
func CloseRedis() {
	for _, c := range []*redis.Client{PubSubClient, AuthCacheClient} {
		if c != nil {
			_ = c.Close()
		}
	}
}
