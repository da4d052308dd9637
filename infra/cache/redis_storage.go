package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

var _ fiber.Storage = (*RedisStorage)(nil)

// RedisStorage implements fiber.Storage on Redis so the rate limiter shares
// its counters across server instances.
type RedisStorage struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisStorage parses a redis:// URL and returns a storage using prefix
// for every key.
func NewRedisStorage(url, prefix string, dialTimeout time.Duration, logger *slog.Logger) (*RedisStorage, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	if dialTimeout > 0 {
		opt.DialTimeout = dialTimeout
	}
	return NewRedisStorageWithOptions(opt, prefix, logger), nil
}

// NewRedisStorageWithOptions builds a storage from redis.Options.
func NewRedisStorageWithOptions(opt *redis.Options, prefix string, logger *slog.Logger) *RedisStorage {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisStorage{client: redis.NewClient(opt), prefix: prefix, logger: logger}
}

func (r *RedisStorage) key(key string) string {
	return r.prefix + key
}

// Ping checks connectivity.
func (r *RedisStorage) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Get returns nil, nil for a missing key as fiber.Storage requires.
func (r *RedisStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	val, err := r.client.Get(context.Background(), r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Redis storage get error", "key", key, "error", err)
		return nil, err
	}
	return val, nil
}

// Set stores val. A zero exp keeps the key forever.
func (r *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	if err := r.client.Set(context.Background(), r.key(key), val, exp).Err(); err != nil {
		r.logger.Error("Redis storage set error", "key", key, "error", err)
		return err
	}
	return nil
}

func (r *RedisStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	return r.client.Del(context.Background(), r.key(key)).Err()
}

// Reset removes every key under the prefix.
func (r *RedisStorage) Reset() error {
	ctx := context.Background()
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisStorage) Close() error {
	return r.client.Close()
}
