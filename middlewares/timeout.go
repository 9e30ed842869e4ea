package middlewares

import (
	"context"
	"time"

	"github.com/dmitrymomot/relayform/internal"
)

// DefaultTimeout is the default handler deadline.
const DefaultTimeout = 30 * time.Second

type timeoutContextKey struct{}

// Timeout gives the handler a context with a deadline, available through
// TimeoutContext. The handler runs on the request goroutine and is expected
// to pass that context to blocking calls.
func Timeout(d time.Duration) internal.Middleware {
	if d <= 0 {
		d = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()

			c.Set(timeoutContextKey{}, ctx)
			err := next(c)

			if ctx.Err() == context.DeadlineExceeded {
				c.LogWarn("request deadline exceeded", "timeout", d.String())
			}
			return err
		}
	}
}

// TimeoutContext returns the deadline context set by Timeout, or the
// request context when Timeout is not installed.
func TimeoutContext(c internal.Context) context.Context {
	if ctx, ok := c.Get(timeoutContextKey{}).(context.Context); ok {
		return ctx
	}
	return c.Request().Context()
}
