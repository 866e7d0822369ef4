package probe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingPinger fails the first failures calls, then succeeds.
type failingPinger struct {
	failures int
	calls    int
}

func (p *failingPinger) Ping(ctx context.Context) error {
	p.calls++
	if p.calls <= p.failures {
		return errors.New("connection refused")
	}
	return nil
}

func TestWait_SucceedsFirstAttempt(t *testing.T) {
	p := &failingPinger{failures: 0}

	attempts, err := Wait(context.Background(), p, Policy{MaxAttempts: 5, Interval: time.Millisecond}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, p.calls)
}

func TestWait_SucceedsAfterRetries(t *testing.T) {
	p := &failingPinger{failures: 3}

	attempts, err := Wait(context.Background(), p, Policy{MaxAttempts: 10, Interval: time.Millisecond}, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, attempts)
	assert.Equal(t, 4, p.calls)
}

func TestWait_ExhaustsBudget(t *testing.T) {
	for _, max := range []int{1, 2, 5} {
		p := &failingPinger{failures: 1 << 30}

		attempts, err := Wait(context.Background(), p, Policy{MaxAttempts: max, Interval: time.Millisecond}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExhausted)
		assert.Equal(t, max, attempts, "max_attempts=%d", max)
		assert.Equal(t, max, p.calls, "no attempt beyond the budget")
		assert.Contains(t, err.Error(), "connection refused", "last error is surfaced")
	}
}

func TestWait_NoSleepAfterLastAttempt(t *testing.T) {
	p := &failingPinger{failures: 1 << 30}

	start := time.Now()
	_, err := Wait(context.Background(), p, Policy{MaxAttempts: 1, Interval: time.Hour}, nil)
	require.ErrorIs(t, err, ErrExhausted)
	assert.Less(t, time.Since(start), time.Second, "exhaustion must not wait out a final interval")
}

func TestWait_FixedInterval(t *testing.T) {
	p := &failingPinger{failures: 2}
	interval := 20 * time.Millisecond

	start := time.Now()
	attempts, err := Wait(context.Background(), p, Policy{MaxAttempts: 5, Interval: interval}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)

	// Two sleeps separate three attempts.
	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, 2*interval)
}

func TestWait_OnFailureCallback(t *testing.T) {
	p := &failingPinger{failures: 2}

	var seen []int
	_, err := Wait(context.Background(), p, Policy{MaxAttempts: 5, Interval: time.Millisecond}, func(attempt int, err error) {
		require.Error(t, err)
		seen = append(seen, attempt)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, seen, "callback fires per failed attempt, not on success")
}

func TestWait_ContextCancelled(t *testing.T) {
	p := &failingPinger{failures: 1 << 30}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts, err := Wait(ctx, p, Policy{MaxAttempts: 10, Interval: time.Hour}, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts, "in-flight attempt completes, then cancellation wins")
}

func TestWait_InvalidPolicy(t *testing.T) {
	p := &failingPinger{}

	_, err := Wait(context.Background(), p, Policy{MaxAttempts: -1, Interval: time.Millisecond}, nil)
	require.Error(t, err)
	assert.Equal(t, 0, p.calls, "no attempt made with an invalid policy")
}

func TestPolicy_ApplyDefaults(t *testing.T) {
	var p Policy
	p.ApplyDefaults()
	assert.Equal(t, DefaultMaxAttempts, p.MaxAttempts)
	assert.Equal(t, DefaultInterval, p.Interval)

	p = Policy{MaxAttempts: 3, Interval: time.Second}
	p.ApplyDefaults()
	assert.Equal(t, 3, p.MaxAttempts)
	assert.Equal(t, time.Second, p.Interval)
}

func TestPingerFunc(t *testing.T) {
	called := false
	f := PingerFunc(func(ctx context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, f.Ping(context.Background()))
	assert.True(t, called)
}
