// Package probe implements the database readiness probe: a bounded,
// fixed-interval retry loop around a trivial round-trip operation.
//
// The interval is deliberately fixed rather than exponential so the total
// worst-case wait is predictable (MaxAttempts x Interval), which operators
// must budget against any outer liveness timeout.
package probe

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Default retry policy values, matching the behavior the tool replaces.
const (
	DefaultMaxAttempts    = 30
	DefaultInterval       = 2 * time.Second
	DefaultConnectTimeout = 5 * time.Second
)

// ErrExhausted is returned when the retry budget is spent without a
// successful round trip.
var ErrExhausted = errors.New("probe attempts exhausted")

// Pinger performs a single readiness round trip against the dependency.
// Each call must acquire and release its own connection; no state is held
// across attempts.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to the Pinger interface.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// Policy is the retry policy for the probe loop.
type Policy struct {
	// MaxAttempts is the total attempt budget. Must be >= 1.
	MaxAttempts int

	// Interval is the fixed delay between attempts. No backoff, no jitter.
	Interval time.Duration
}

// ApplyDefaults fills zero values with the package defaults.
func (p *Policy) ApplyDefaults() {
	if p.MaxAttempts == 0 {
		p.MaxAttempts = DefaultMaxAttempts
	}
	if p.Interval == 0 {
		p.Interval = DefaultInterval
	}
}

// Validate checks the policy for usable values.
func (p *Policy) Validate() error {
	if p.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1, got %d", p.MaxAttempts)
	}
	if p.Interval < 0 {
		return fmt.Errorf("interval must not be negative, got %s", p.Interval)
	}
	return nil
}

// Wait repeatedly calls pinger.Ping until it succeeds or the attempt budget
// is exhausted. Every failure is treated as retryable; classification of
// transport faults is deliberately uniform.
//
// If onFailure is non-nil it is called after each failed attempt with the
// 1-based attempt number and the error, giving the caller a hook to log
// progress.
//
// Wait returns the number of attempts consumed. On exhaustion the returned
// error wraps ErrExhausted together with the last ping error. Cancellation
// of ctx between attempts returns the context error immediately; the probe
// has no timeout layer of its own.
func Wait(ctx context.Context, pinger Pinger, policy Policy, onFailure func(attempt int, err error)) (int, error) {
	policy.ApplyDefaults()
	if err := policy.Validate(); err != nil {
		return 0, err
	}

	var lastErr error
	for attempt := 1; ; attempt++ {
		err := pinger.Ping(ctx)
		if err == nil {
			return attempt, nil
		}
		lastErr = err
		if onFailure != nil {
			onFailure(attempt, err)
		}

		if attempt >= policy.MaxAttempts {
			return attempt, fmt.Errorf("%w after %d attempts: %v", ErrExhausted, attempt, lastErr)
		}

		select {
		case <-ctx.Done():
			return attempt, ctx.Err()
		case <-time.After(policy.Interval):
		}
	}
}
