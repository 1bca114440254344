package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/config"
)

// Redis holds the prediction cache client. A zero value is a disabled cache.
type Redis struct {
	Client *redis.Client
}

// NewRedis builds the cache client. An unreachable server is only logged: the
// classifier serves uncached until Redis comes back.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	if cfg.Addr == "" {
		logger.Info("REDIS_ADDR not provided; prediction cache disabled")
		return &Redis{}
	}

	client := redis.NewClient(redisOptions(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("prediction cache unreachable; serving uncached", zap.String("addr", cfg.Addr), zap.Error(err))
	} else {
		logger.Info("prediction cache connected", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	}

	return &Redis{Client: client}
}

// redisOptions keeps every cache round trip within the configured timeout and
// fails fast instead of retrying.
func redisOptions(cfg config.RedisConfig) *redis.Options {
	timeout := cfg.Timeout()
	return &redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		MaxRetries:   -1,
	}
}

// Enabled reports whether a cache client exists.
func (r *Redis) Enabled() bool {
	return r != nil && r.Client != nil
}

// Close closes the client.
func (r *Redis) Close() {
	if r.Enabled() {
		_ = r.Client.Close()
	}
}

// Ping checks the cache for the readiness probe.
func (r *Redis) Ping(ctx context.Context) error {
	if !r.Enabled() {
		return errors.New("prediction cache not configured")
	}
	return r.Client.Ping(ctx).Err()
}
