// Package ratelimit provides in-memory sliding-window rate limiting for
// context-aware operations.
//
// A [Limiter] admits at most Calls invocations per Period, counted over
// a sliding window of recorded admission times. State is per-instance
// and mutex-guarded, so one limiter can be shared by any number of
// goroutines while independent limiters never interfere. Nothing is
// persisted; limits are best-effort within a single process.
//
// Waiting callers are admitted as capacity frees up, not necessarily in
// FIFO order. Waits never fail on their own; the only error [Limiter.Wait]
// returns is the context's, when the caller is cancelled mid-wait.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Defaults applied for zero-valued [Config] fields.
const (
	DefaultCalls  = 10
	DefaultPeriod = time.Second
)

// Config describes a rate limit: at most Calls admissions per Period.
// Zero values take the defaults (10 calls per second).
type Config struct {
	Calls  int
	Period time.Duration
}

func (c Config) withDefaults() Config {
	if c.Calls <= 0 {
		c.Calls = DefaultCalls
	}
	if c.Period <= 0 {
		c.Period = DefaultPeriod
	}
	return c
}

// Limiter is a sliding-window rate limiter. Create one with [New]; the
// zero value is not usable.
type Limiter struct {
	mu     sync.Mutex
	calls  int
	period time.Duration
	window []time.Time

	now func() time.Time // overridable in tests
}

// New returns a Limiter enforcing cfg.
func New(cfg Config) *Limiter {
	cfg = cfg.withDefaults()
	return &Limiter{
		calls:  cfg.Calls,
		period: cfg.Period,
		now:    time.Now,
	}
}

// Wait blocks until the caller is admitted or ctx is cancelled. On
// admission the call is recorded in the window and Wait returns nil; on
// cancellation the context's error is returned and nothing is recorded.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		admitted, wait := l.tryAdmit()
		if admitted {
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Allow reports whether a call may proceed right now, recording it when
// admitted. It never blocks.
func (l *Limiter) Allow() bool {
	admitted, _ := l.tryAdmit()
	return admitted
}

// tryAdmit performs one admission check. When the window is full it
// returns the time until the oldest recorded call slides out.
func (l *Limiter) tryAdmit() (admitted bool, wait time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.period)

	keep := 0
	for _, ts := range l.window {
		if ts.After(cutoff) {
			l.window[keep] = ts
			keep++
		}
	}
	l.window = l.window[:keep]

	if len(l.window) < l.calls {
		l.window = append(l.window, now)
		return true, 0
	}

	return false, l.window[0].Add(l.period).Sub(now)
}

// Wrap returns a callable that waits for admission on l before invoking
// fn.
func Wrap(l *Limiter, fn func(context.Context) error) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := l.Wait(ctx); err != nil {
			return err
		}
		return fn(ctx)
	}
}

// WrapValue is [Wrap] for callables that produce a value.
func WrapValue[T any](l *Limiter, fn func(context.Context) (T, error)) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		if err := l.Wait(ctx); err != nil {
			var zero T
			return zero, err
		}
		return fn(ctx)
	}
}
