package inflight

import (
	"context"
	"time"
)

// DefaultTTL bounds how long a lock survives a crashed holder.
const DefaultTTL = 30 * time.Second

// Locker grants exclusive, expiring locks by key.
type Locker interface {
	// Acquire takes the lock for key. It returns ErrLocked while another
	// holder owns an unexpired lock for the same key.
	Acquire(ctx context.Context, key string) (Release, error)

	// Close releases resources held by the locker itself.
	Close() error
}

// Release gives a lock back. Releasing a lock that expired and was taken
// by someone else is a no-op.
type Release func(ctx context.Context) error
