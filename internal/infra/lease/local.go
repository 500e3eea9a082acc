package lease

import (
	"context"
	"sync"
	"time"

	"lending-core/internal/pkg/clock"
)

// LocalLocker keeps leases in process memory. It only coordinates callers
// within one process.
type LocalLocker struct {
	clock clock.Clock

	mu      sync.Mutex
	expires map[string]time.Time
}

func NewLocalLocker(clk clock.Clock) *LocalLocker {
	return &LocalLocker{clock: clk, expires: map[string]time.Time{}}
}

func (l *LocalLocker) TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()
	if until, held := l.expires[key]; held && now.Before(until) {
		return false, nil
	}
	l.expires[key] = now.Add(ttl)
	return true, nil
}

func (l *LocalLocker) Release(_ context.Context, key string) error {
	l.mu.Lock()
	delete(l.expires, key)
	l.mu.Unlock()
	return nil
}
