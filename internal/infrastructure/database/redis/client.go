// Package redis provides the Redis client wrapper and the read-through cache
// used for clause risk assessments. Direct use of go-redis is confined to
// this package; the application layer depends on the analysis.Cache seam.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clauselens/clauselens/internal/config"
	"github.com/clauselens/clauselens/internal/infrastructure/monitoring/logging"
	appErrors "github.com/clauselens/clauselens/pkg/errors"
)

// Client wraps a go-redis client with the platform logger and lifecycle
// helpers. It is constructed once at startup and shared by all caches.
type Client struct {
	rdb    *redis.Client
	logger logging.Logger
}

// NewClient connects to Redis using cfg and verifies the connection with a
// ping. The caller owns the returned Client and must Close it on shutdown.
func NewClient(cfg config.RedisConfig, logger logging.Logger) (*Client, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, appErrors.Wrap(err, appErrors.ErrCodeCacheError, "failed to connect to redis at "+cfg.Addr)
	}

	logger.Info("redis connected",
		logging.String("addr", cfg.Addr),
		logging.Int("db", cfg.DB),
	)
	return &Client{rdb: rdb, logger: logger.Named("redis")}, nil
}

// Ping checks connectivity; used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrCodeCacheError, "redis ping failed")
	}
	return nil
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Raw exposes the underlying go-redis client for operations not covered by
// the Cache interface.
func (c *Client) Raw() *redis.Client {
	return c.rdb
}
