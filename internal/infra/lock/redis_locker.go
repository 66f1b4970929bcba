// Package lock provides distributed locks backed by Redis.
package lock

import (
	"context"
	"log/slog"
	"time"

	"agrimatch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "agrimatch:lock:"

// ErrLockNotHeld is returned when releasing a lock that expired or was taken over.
var ErrLockNotHeld = errors.New("lock not held")

// releaseScript deletes the key only while it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`)

// redisLocker implements service.Locker with SET NX PX and a token checked on release.
type redisLocker struct {
	client    redis.UniversalClient
	keyPrefix string
	logger    *slog.Logger
}

type redisLock struct {
	client redis.UniversalClient
	key    string
	token  string
	logger *slog.Logger
}

// NewRedisLocker is the constructor for redisLocker.
func NewRedisLocker(client redis.UniversalClient, keyPrefix string, logger *slog.Logger) service.Locker {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}

	return &redisLocker{
		client:    client,
		keyPrefix: keyPrefix,
		logger:    logger,
	}
}

// Acquire takes the lock for ttl or returns service.ErrLockNotAcquired.
func (l *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (service.Lock, error) {
	lockKey := l.keyPrefix + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, lockKey, token, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to acquire lock %s", key)
	}
	if !ok {
		return nil, service.ErrLockNotAcquired
	}

	l.logger.DebugContext(ctx, "Acquired lock", slog.String("key", lockKey), slog.Duration("ttl", ttl))

	return &redisLock{
		client: l.client,
		key:    lockKey,
		token:  token,
		logger: l.logger,
	}, nil
}

// Release frees the lock if it is still ours.
func (lk *redisLock) Release(ctx context.Context) error {
	result, err := releaseScript.Run(ctx, lk.client, []string{lk.key}, lk.token).Int64()
	if err != nil {
		return errors.Wrapf(err, "failed to release lock %s", lk.key)
	}
	if result == 0 {
		return ErrLockNotHeld
	}

	lk.logger.DebugContext(ctx, "Released lock", slog.String("key", lk.key))

	return nil
}
