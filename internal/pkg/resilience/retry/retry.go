// Package retry runs fallible operations again after a pause, on top of
// avast/retry-go. Pauses are fixed unless WithBackoff is given, and only the
// error of the last attempt is returned.
//
// Basic usage:
//
//	r := retry.New()
//	err := r.Execute(ctx, func() error {
//	    return provider.Ping(ctx)
//	})
//
// Returning a value:
//
//	r := retry.New(retry.WithAttempts(3), retry.WithDelay(time.Second))
//	code, err := retry.Value(ctx, r, func() (string, error) {
//	    return provider.CodeAt(ctx, address)
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, fails permanently, runs out
// of attempts or ctx is done.
type Retry interface {
	// Execute calls operation at least once and again after each failure,
	// pausing between attempts as configured.
	//
	// The operation should be safe to call more than once. An error wrapped
	// with Permanent stops the loop immediately.
	//
	// Execute returns nil on the first success. Otherwise it returns the error
	// of the last attempt, or the context error when ctx is done first.
	Execute(ctx context.Context, operation func() error) error
}

// config holds the settings applied by New.
type config struct {
	attempts uint          // attempts including the first one; zero means until ctx is done
	delay    time.Duration // pause between attempts, or the first pause with backoff
	maxDelay time.Duration // backoff cap; zero keeps every pause at delay
}

// Option configures New. Options are applied in order.
type Option func(*config)

// retrier implements Retry with retry-go.
type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry configured by opts.
//
// Default configuration:
//   - attempts: 3 (1 initial attempt + 2 retries)
//   - delay:    1 second, fixed
//   - backoff:  disabled
//
// Example:
//
//	r := retry.New(
//	    retry.WithAttempts(5),
//	    retry.WithDelay(200*time.Millisecond),
//	    retry.WithBackoff(2*time.Second),
//	)
func New(opts ...Option) Retry {
	cfg := config{
		attempts: 3,
		delay:    time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{cfg: cfg}
}

// Execute implements Retry.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	}

	if r.cfg.maxDelay > 0 {
		options = append(options,
			retry.DelayType(retry.BackOffDelay),
			retry.MaxDelay(r.cfg.maxDelay),
		)
	}

	return retry.Do(operation, options...)
}

// Value runs operation through r and returns the value of the first
// successful attempt, or the zero value with the retry error.
func Value[T any](ctx context.Context, r Retry, operation func() (T, error)) (T, error) {
	var result T
	err := r.Execute(ctx, func() error {
		v, err := operation()
		if err != nil {
			return err
		}

		result = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}

// Permanent marks err as not worth retrying. Execute returns it unwrapped
// right away.
func Permanent(err error) error {
	return retry.Unrecoverable(err)
}

// WithAttempts sets the maximum number of attempts, the first one included.
//
// Default: 3. Zero retries until ctx is done.
//
// Example:
//
//	r := retry.New(retry.WithAttempts(5))
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the pause between attempts. With WithBackoff it is the first
// pause and later ones double from it.
//
// Default: 1 second.
//
// Example:
//
//	r := retry.New(retry.WithDelay(500 * time.Millisecond))
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithBackoff doubles the pause after every failed attempt, never waiting
// longer than maxDelay. A maxDelay of zero keeps pauses fixed.
//
// Default: disabled.
//
// Example:
//
//	r := retry.New(retry.WithDelay(100*time.Millisecond), retry.WithBackoff(2*time.Second))
func WithBackoff(maxDelay time.Duration) Option {
	return func(c *config) {
		c.maxDelay = maxDelay
	}
}
