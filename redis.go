package i18n

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures the Redis-backed translation source.
type RedisConfig struct {
	ConnectionURL  string        `env:"I18N_REDIS_URL,required" envDefault:"redis://localhost:6379/0"` // ConnectionURL in the format "redis://:password@localhost:6379/0".
	KeyPrefix      string        `env:"I18N_REDIS_KEY_PREFIX" envDefault:"i18n:"`                      // KeyPrefix namespaces the per-locale hashes.
	RetryAttempts  int           `env:"I18N_REDIS_RETRY_ATTEMPTS" envDefault:"3"`                      // RetryAttempts is the number of retry attempts to connect.
	RetryInterval  time.Duration `env:"I18N_REDIS_RETRY_INTERVAL" envDefault:"5s"`                     // RetryInterval is the interval between retry attempts.
	ConnectTimeout time.Duration `env:"I18N_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`                   // ConnectTimeout bounds the whole connect loop.
}

// RedisAdapter loads translations from one hash per locale. A hash named
// "<prefix><locale>" maps flat (or dotted) keys to template strings.
type RedisAdapter struct {
	client *redis.Client
	prefix string
}

// NewRedisAdapter connects to Redis with retry and returns an adapter bound
// to the configured key prefix.
func NewRedisAdapter(ctx context.Context, cfg RedisConfig) (*RedisAdapter, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDBConn, err)
	}

	for i := 0; i < cfg.RetryAttempts; i++ {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return &RedisAdapter{client: client, prefix: cfg.KeyPrefix}, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrStoreNotReady, ctx.Err())
		default:
			time.Sleep(cfg.RetryInterval)
		}
	}

	return nil, ErrStoreNotReady
}

// NewRedisAdapterFromClient wraps an existing client. The caller keeps
// ownership of the client. Returns nil if client is nil.
func NewRedisAdapterFromClient(client *redis.Client, prefix string) *RedisAdapter {
	if client == nil {
		return nil
	}
	return &RedisAdapter{client: client, prefix: prefix}
}

// Load implements the Adapter interface. It scans for "<prefix>*" hashes and
// reads each one with HGETALL.
func (a *RedisAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any)

	iter := a.client.Scan(ctx, 0, a.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		hashKey := iter.Val()
		locale := strings.TrimPrefix(hashKey, a.prefix)
		if locale == "" {
			continue
		}

		fields, err := a.client.HGetAll(ctx, hashKey).Result()
		if err != nil {
			return nil, errors.Join(ErrFailedToReadSource, err)
		}

		doc := make(map[string]any, len(fields))
		for key, value := range fields {
			doc[key] = value
		}
		result[locale] = doc
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Join(ErrFailedToReadSource, err)
	}

	return result, nil
}

// Close releases the underlying client. Only call this when the adapter was
// created with NewRedisAdapter.
func (a *RedisAdapter) Close() error {
	return a.client.Close()
}
