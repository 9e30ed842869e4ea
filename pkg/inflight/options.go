package inflight

import "time"

// Option configures a Locker.
type Option func(*options)

type options struct {
	prefix          string
	ttl             time.Duration
	cleanupInterval time.Duration
}

func defaultOptions() *options {
	return &options{
		prefix:          "inflight",
		ttl:             DefaultTTL,
		cleanupInterval: time.Minute,
	}
}

// WithTTL sets the lock lifetime.
// Default: 30 seconds.
func WithTTL(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.ttl = d
		}
	}
}

// WithPrefix sets the Redis key prefix. Ignored by Memory.
// Default: "inflight".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithCleanupInterval sets how often Memory drops expired locks.
// Zero disables the background janitor.
// Default: 1 minute.
func WithCleanupInterval(d time.Duration) Option {
	return func(o *options) {
		o.cleanupInterval = d
	}
}
