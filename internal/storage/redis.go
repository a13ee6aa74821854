package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/blueforce/internal/logger"
)

// RedisStorage keeps each key as a plain Redis string without expiration.
type RedisStorage struct {
	client *redis.Client
	prefix string
}

// NewRedisStorage creates a Redis-backed Storage. Every key is namespaced with prefix.
func NewRedisStorage(client *redis.Client, prefix string) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix}
}

func (r *RedisStorage) Get(ctx context.Context, key string) (string, bool, error) {
	k := r.prefix + key

	val, err := r.client.Get(ctx, k).Result()

	logger.Log.Infow("redis get",
		"key", k,
		"result", len(val),
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisStorage) Set(ctx context.Context, key, value string) error {
	k := r.prefix + key
	err := r.client.Set(ctx, k, value, 0).Err()

	logger.Log.Infow("redis set",
		"key", k,
		"size", len(value),
		"result", "ok",
		"error", err,
	)

	return err
}

func (r *RedisStorage) Remove(ctx context.Context, key string) error {
	k := r.prefix + key
	err := r.client.Del(ctx, k).Err()

	logger.Log.Infow("redis del",
		"key", k,
		"result", "deleted",
		"error", err,
	)

	return err
}
