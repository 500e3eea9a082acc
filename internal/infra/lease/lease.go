// Package lease hands out short-lived named leases so that only one
// instance runs a periodic job at a time.
package lease

import (
	"context"
	"time"
)

type Locker interface {
	// TryAcquire reports false without error when another holder owns key.
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release gives up a lease this locker holds. Releasing a lease that has
	// expired or was taken over by someone else is a no-op.
	Release(ctx context.Context, key string) error
}
