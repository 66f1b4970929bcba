package lock

import (
	"context"
	"sync"
	"time"

	"agrimatch/internal/domain/service"
)

// localLocker serializes holders inside one process. It backs single-instance
// deployments that run without Redis.
type localLocker struct {
	mu   sync.Mutex
	held map[string]time.Time
	now  func() time.Time
}

type localLock struct {
	locker *localLocker
	key    string
	until  time.Time
}

// NewLocalLocker is the constructor for localLocker.
func NewLocalLocker() service.Locker {
	return &localLocker{
		held: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (l *localLocker) Acquire(_ context.Context, key string, ttl time.Duration) (service.Lock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if until, ok := l.held[key]; ok && now.Before(until) {
		return nil, service.ErrLockNotAcquired
	}

	until := now.Add(ttl)
	l.held[key] = until

	return &localLock{locker: l, key: key, until: until}, nil
}

func (lk *localLock) Release(_ context.Context) error {
	lk.locker.mu.Lock()
	defer lk.locker.mu.Unlock()

	if until, ok := lk.locker.held[lk.key]; !ok || !until.Equal(lk.until) {
		return ErrLockNotHeld
	}
	delete(lk.locker.held, lk.key)

	return nil
}
