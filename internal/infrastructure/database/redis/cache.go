package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/clauselens/clauselens/internal/infrastructure/monitoring/logging"
	appErrors "github.com/clauselens/clauselens/pkg/errors"
)

// Sentinel errors returned by Cache operations. Callers compare with
// errors.Is; every other failure is wrapped with ErrCodeCacheError.
var (
	ErrCacheMiss           = appErrors.New(appErrors.CodeNotFound, "cache: key not found")
	ErrNilValue            = appErrors.New(appErrors.CodeNotFound, "cache: null value cached for key")
	ErrSerializationFailed = appErrors.New(appErrors.ErrCodeSerialization, "cache: serialization failed")
)

const (
	// nullValue marks a loader result of "not found" so repeated misses do
	// not hammer the loader (negative caching).
	nullValue = "__null__"

	defaultTTL     = 30 * time.Minute
	defaultNullTTL = time.Minute
)

// Cache is a typed read-through cache over Redis. Values are serialized as
// JSON and keys carry a configurable namespace prefix.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	// GetOrSet returns the cached value for key, or runs loader, caches its
	// result, and returns it. Concurrent calls for the same key share a
	// single loader execution.
	GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration,
		loader func(ctx context.Context) (interface{}, error)) error

	// DeleteByPrefix removes every key under the given logical prefix.
	// Iterates with SCAN; intended for admin operations, not hot paths.
	DeleteByPrefix(ctx context.Context, prefix string) error

	Ping(ctx context.Context) error
}

// Option customises a Cache.
type Option func(*cache)

// WithPrefix sets the key namespace. Defaults to "clauselens:".
func WithPrefix(prefix string) Option {
	return func(c *cache) { c.prefix = prefix }
}

// WithDefaultTTL sets the TTL applied when Set or GetOrSet receive ttl <= 0.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(c *cache) { c.defaultTTL = ttl }
}

// WithNullTTL sets how long a negative (not-found) result is cached.
func WithNullTTL(ttl time.Duration) Option {
	return func(c *cache) { c.nullTTL = ttl }
}

type cache struct {
	rdb        *redis.Client
	prefix     string
	defaultTTL time.Duration
	nullTTL    time.Duration
	logger     logging.Logger
	group      singleflight.Group
}

// NewCache builds a Cache on top of an established Client.
func NewCache(client *Client, logger logging.Logger, opts ...Option) Cache {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	c := &cache{
		rdb:        client.rdb,
		prefix:     "clauselens:",
		defaultTTL: defaultTTL,
		nullTTL:    defaultNullTTL,
		logger:     logger.Named("cache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *cache) buildKey(key string) string {
	return c.prefix + key
}

// jitterTTL spreads expirations by up to ±10% so keys written together do
// not expire together.
func jitterTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return ttl
	}
	span := int64(ttl) / 10
	if span == 0 {
		return ttl
	}
	return ttl + time.Duration(rand.Int63n(2*span)-span)
}

func (c *cache) Get(ctx context.Context, key string, dest interface{}) error {
	raw, err := c.rdb.Get(ctx, c.buildKey(key)).Result()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrCodeCacheError, "cache get failed")
	}
	if raw == nullValue {
		return ErrNilValue
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		// A corrupt entry is as good as a miss; drop it so the next read
		// repopulates.
		c.logger.Warn("dropping corrupt cache entry", logging.String("key", key), logging.Err(err))
		_ = c.rdb.Del(ctx, c.buildKey(key)).Err()
		return ErrSerializationFailed
	}
	return nil
}

func (c *cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	b, err := json.Marshal(value)
	if err != nil {
		return ErrSerializationFailed
	}
	if err := c.rdb.Set(ctx, c.buildKey(key), b, jitterTTL(ttl)).Err(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrCodeCacheError, "cache set failed")
	}
	return nil
}

func (c *cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.buildKey(k)
	}
	if err := c.rdb.Del(ctx, full...).Err(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrCodeCacheError, "cache delete failed")
	}
	return nil
}

func (c *cache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.rdb.Exists(ctx, c.buildKey(key)).Result()
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrCodeCacheError, "cache exists failed")
	}
	return n > 0, nil
}

func (c *cache) GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration,
	loader func(ctx context.Context) (interface{}, error)) error {

	err := c.Get(ctx, key, dest)
	if err == nil {
		return nil
	}
	if err == ErrNilValue {
		return ErrCacheMiss
	}

	// Miss (or corrupt entry): load once per key across goroutines.
	raw, loadErr, _ := c.group.Do(c.buildKey(key), func() (interface{}, error) {
		v, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		if v == nil {
			if err := c.rdb.Set(ctx, c.buildKey(key), nullValue, jitterTTL(c.nullTTL)).Err(); err != nil {
				c.logger.Warn("failed to cache null value", logging.String("key", key), logging.Err(err))
			}
			return nil, ErrCacheMiss
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, ErrSerializationFailed
		}
		if err := c.Set(ctx, key, v, ttl); err != nil {
			// Serving the loaded value matters more than storing it.
			c.logger.Warn("failed to populate cache", logging.String("key", key), logging.Err(err))
		}
		return b, nil
	})
	if loadErr != nil {
		return loadErr
	}
	return json.Unmarshal(raw.([]byte), dest)
}

func (c *cache) DeleteByPrefix(ctx context.Context, prefix string) error {
	var cursor uint64
	pattern := c.buildKey(prefix) + "*"
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrCodeCacheError, "cache scan failed")
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return appErrors.Wrap(err, appErrors.ErrCodeCacheError, "cache delete failed")
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (c *cache) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrCodeCacheError, "redis ping failed")
	}
	return nil
}
