package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/amirasaad/banking/pkg/lock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still carries our token, so a
// lock that expired and was taken by someone else is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

const defaultRetryInterval = 25 * time.Millisecond

// Redis is a locker shared by every process connected to the same server.
// Each lock expires after ttl so a crashed holder cannot wedge an account.
type Redis struct {
	client    redis.UniversalClient
	ttl       time.Duration
	retry     time.Duration
	keyPrefix string
	logger    *slog.Logger
}

// NewRedis returns a locker on an existing client.
func NewRedis(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *Redis {
	return &Redis{
		client:    client,
		ttl:       ttl,
		retry:     defaultRetryInterval,
		keyPrefix: "lock:",
		logger:    logger.With("component", "redis-lock"),
	}
}

// NewRedisFromURL connects to url and verifies the connection.
func NewRedisFromURL(ctx context.Context, url string, ttl time.Duration, logger *slog.Logger) (*Redis, error) {
	if url == "" {
		return nil, errors.New("redis lock: url is required")
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis lock: invalid URL: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis lock: connection failed: %w", err)
	}
	return NewRedis(client, ttl, logger), nil
}

// Lock implements lock.Locker. It polls SET NX until the key is free or ctx
// is done.
func (r *Redis) Lock(ctx context.Context, key string) (lock.Unlock, error) {
	name := r.keyPrefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(r.retry)
	defer ticker.Stop()
	for {
		ok, err := r.client.SetNX(ctx, name, token, r.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %s: %w", lock.ErrNotAcquired, key, ctx.Err())
			}
			return nil, fmt.Errorf("redis lock: acquire %s: %w", key, err)
		}
		if ok {
			break
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %w", lock.ErrNotAcquired, key, ctx.Err())
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// the caller's context may already be cancelled
			relCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := releaseScript.Run(relCtx, r.client, []string{name}, token).Err(); err != nil {
				r.logger.Warn("failed to release lock", "key", key, "error", err)
			}
		})
	}, nil
}

// Close closes the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}
