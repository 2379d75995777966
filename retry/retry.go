package retry

import (
	"context"
	"errors"
	"time"
)

// RetryIf reports whether an error is worth retrying. Errors it rejects
// propagate to the caller immediately.
type RetryIf func(error) bool

// On builds a [RetryIf] that retries only errors matching one of the
// given targets, in the sense of [errors.Is].
func On(targets ...error) RetryIf {
	return func(err error) bool {
		for _, target := range targets {
			if errors.Is(err, target) {
				return true
			}
		}
		return false
	}
}

// Do runs op under the policy described by cfg, retrying errors accepted
// by retryable (all errors when retryable is nil). It returns nil as
// soon as op succeeds, the last error once attempts or the time budget
// are exhausted, a non-retryable error immediately, or the context's
// error if ctx is cancelled before or during a backoff sleep.
func Do(ctx context.Context, cfg Config, op func(context.Context) error, retryable RetryIf) error {
	_, err := DoValue(ctx, cfg, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	}, retryable)
	return err
}

// DoValue is [Do] for operations that produce a value. On exhaustion the
// value returned by the last attempt accompanies the last error, so a
// caller can still inspect a partial result such as an HTTP response.
func DoValue[T any](ctx context.Context, cfg Config, op func(context.Context) (T, error), retryable RetryIf) (T, error) {
	cfg = cfg.withDefaults()
	start := time.Now()

	var (
		last    T
		lastErr error
	)

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return last, err
		}

		last, lastErr = op(ctx)
		if lastErr == nil {
			return last, nil
		}

		if retryable != nil && !retryable(lastErr) {
			return last, lastErr
		}

		if cfg.MaxTries > 0 && attempt >= cfg.MaxTries {
			return last, lastErr
		}

		delay := cfg.Delay(attempt)
		if cfg.MaxTime > 0 {
			remaining := cfg.MaxTime - time.Since(start)
			if remaining <= 0 {
				return last, lastErr
			}
			if delay > remaining {
				delay = remaining
			}
		}

		if err := sleep(ctx, delay); err != nil {
			return last, err
		}
	}
}

// Wrap returns a callable that applies [Do] around fn on every
// invocation.
func Wrap(cfg Config, retryable RetryIf, fn func(context.Context) error) func(context.Context) error {
	return func(ctx context.Context) error {
		return Do(ctx, cfg, fn, retryable)
	}
}

// WrapValue returns a callable that applies [DoValue] around fn on every
// invocation.
func WrapValue[T any](cfg Config, retryable RetryIf, fn func(context.Context) (T, error)) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		return DoValue(ctx, cfg, fn, retryable)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
