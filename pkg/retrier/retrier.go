package retrier

import (
	"context"
	"time"

	"github.com/avreline/boundary/pkg/validate"
)

const defaultMaxAttempts = 3

type config struct {
	maxAttempts int
	backoff     Strategy
}

// Option configures a Do call.
type Option func(*config)

// WithMaxAttempts sets the total number of calls to fn, first attempt
// included. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.maxAttempts = n
		}
	}
}

// WithBackoff sets the delay strategy between attempts. Nil strategies are
// ignored for safety.
func WithBackoff(s Strategy) Option {
	return func(c *config) {
		if s != nil {
			c.backoff = s
		}
	}
}

// Do calls fn until it succeeds, retrying only validation failures on the
// hypothesis that they stem from a transient, incomplete upstream response.
//
// Any other error is returned immediately without a retry: a malformed
// shape will not heal by asking again. Between attempts Do sleeps per the
// backoff strategy, honoring ctx cancellation during the sleep. When
// attempts are exhausted the last validation error is returned.
func Do[T any](ctx context.Context, fn func(context.Context) (T, error), opts ...Option) (T, error) {
	cfg := &config{
		maxAttempts: defaultMaxAttempts,
		backoff:     DefaultStrategy(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var zero T
	var lastErr error
	for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(cfg.backoff.NextDelay(attempt - 1)):
			}
		}

		out, err := fn(ctx)
		if err == nil {
			return out, nil
		}
		if !validate.IsValidationError(err) {
			return zero, err
		}
		lastErr = err
	}
	return zero, lastErr
}
