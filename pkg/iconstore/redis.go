package iconstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisConfig holds the configuration for the Redis client.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// TTL applies to every written entry; zero means entries never expire,
	// matching the disk store's append-only behaviour.
	TTL time.Duration
}

// RedisStore keeps icon bytes in Redis. Useful when several renderer hosts
// share one cache.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisStore creates and connects a RedisStore. It pings the server to
// ensure connectivity before returning.
func NewRedisStore(ctx context.Context, cfg *RedisConfig, logger zerolog.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info().Str("redis_address", cfg.Addr).Msg("Successfully connected to Redis.")

	return &RedisStore{
		client: client,
		ttl:    cfg.TTL,
		logger: logger.With().Str("component", "RedisStore").Logger(),
	}, nil
}

// Fetch retrieves the entry for the URL. A redis.Nil result is a normal miss
// and maps to ErrNotFound; anything else is a genuine problem.
func (s *RedisStore) Fetch(ctx context.Context, url string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(url)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		s.logger.Error().Err(err).Str("url", url).Msg("Unexpected Redis error during fetch.")
		return nil, fmt.Errorf("redis get: %w", err)
	}

	s.logger.Debug().Str("url", url).Msg("Redis store hit.")
	return data, nil
}

// Write stores the entry with the configured TTL.
func (s *RedisStore) Write(ctx context.Context, url string, data []byte) error {
	if err := s.client.Set(ctx, s.key(url), data, s.ttl).Err(); err != nil {
		s.logger.Error().Err(err).Str("url", url).Msg("Failed to set icon in Redis.")
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close closes the Redis client connection.
func (s *RedisStore) Close() error {
	s.logger.Info().Msg("Closing Redis client connection...")
	return s.client.Close()
}

func (s *RedisStore) key(url string) string {
	return "svgicon:" + objectKey(url)
}
