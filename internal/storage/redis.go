package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/storefront-studio/internal/config"
	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	opt, err := redis.ParseURL(cfg.RedisConnect.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	slog.Info("Connecting to Redis", slog.String("addr", opt.Addr), slog.Int("db", opt.DB))

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Storage.Timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")
	return client, nil
}

// NewRedisStore keeps each document under prefix:key. A ttl of zero stores keys without expiry.
func NewRedisStore(client redis.Cmdable, prefix string, ttl time.Duration) BlobStore {
	return &redisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {

	data, err := r.client.Get(ctx, Key(r.prefix, key)).Bytes()
	if err != nil {

		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("failed to get key %s from redis: %w", key, err)

	}

	return data, true, nil
}

func (r *redisStore) Set(ctx context.Context, key string, value []byte) error {

	err := r.client.Set(ctx, Key(r.prefix, key), value, r.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", key, err)
	}

	return nil

}

func (r *redisStore) Remove(ctx context.Context, key string) error {

	err := r.client.Del(ctx, Key(r.prefix, key)).Err()
	if err != nil {
		return fmt.Errorf("failed to delete key %s from redis: %w", key, err)
	}

	return nil

}

func (r *redisStore) Close() error {
	if closer, ok := r.client.(interface{ Close() error }); ok {
		return closer.Close()
	}

	return nil
}
