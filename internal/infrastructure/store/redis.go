package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bridallink/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store over Redis. Suitable when several
// planner instances need to share one household's state.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisStore creates a Redis-backed store and verifies connectivity
func NewRedisStore(cfg *config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client:    client,
		keyPrefix: "bridallink:",
	}, nil
}

// NewRedisStoreWithClient creates a store with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisStoreWithClient(client *redis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "bridallink:"
	}
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get returns the value under key or ErrKeyNotFound
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return v, nil
}

// Set stores value under key without expiration
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.keyPrefix+key, value, 0).Err()
}

// Delete removes the value under key; deleting an absent key is a no-op
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.keyPrefix+key).Err()
}

// Close closes the underlying Redis client
func (s *RedisStore) Close() error {
	return s.client.Close()
}
