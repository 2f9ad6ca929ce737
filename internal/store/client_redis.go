package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-user-client/internal/logger"
)

const redisSessionPrefix = "user-client:session:"

type redisSessionStore struct {
	client *redis.Client
	prefix string
	logger *logger.Logger
}

// NewConnectRedis parses a redis:// or rediss:// URL and pings the server.
func NewConnectRedis(ctx context.Context, dsn string, log *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err = client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		client.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectRedis").Str("addr", opts.Addr).Msg("connected to redis successfully")

	return client, nil
}

// NewRedisSessionStore returns a [SessionStore] keeping each key as a plain
// redis string without expiry. Keys are namespaced so several clients can
// share one database.
func NewRedisSessionStore(client *redis.Client, logger *logger.Logger) SessionStore {
	return &redisSessionStore{
		client: client,
		prefix: redisSessionPrefix,
		logger: logger,
	}
}

func (r *redisSessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		r.logger.Err(err).Str("func", "redisSessionStore.Get").Str("key", key).Msg("error reading session value")
		return "", false, fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	return value, true, nil
}

func (r *redisSessionStore) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		r.logger.Err(err).Str("func", "redisSessionStore.Set").Str("key", key).Msg("error writing session value")
		return fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	return nil
}

func (r *redisSessionStore) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.logger.Err(err).Str("func", "redisSessionStore.Remove").Str("key", key).Msg("error removing session value")
		return fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	return nil
}

func (r *redisSessionStore) Close() error {
	return r.client.Close()
}

func (r *redisSessionStore) key(key string) string {
	return fmt.Sprintf("%s%s", r.prefix, key)
}
