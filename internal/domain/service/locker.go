package service

import (
	"context"
	"errors"
	"time"
)

// ErrLockNotAcquired is returned when another holder owns the lock.
var ErrLockNotAcquired = errors.New("lock not acquired")

// Lock is a held distributed lock.
type Lock interface {
	Release(ctx context.Context) error
}

// Locker grants short-lived exclusive locks shared across processes.
type Locker interface {
	// Acquire takes the lock for ttl or returns ErrLockNotAcquired.
	Acquire(ctx context.Context, key string, ttl time.Duration) (Lock, error)
}
