package retry

import (
	"math/rand/v2"
	"time"
)

// Jitter selects how a computed backoff delay is randomized before
// sleeping.
type Jitter string

const (
	// JitterFull replaces the computed delay with a uniformly random
	// duration in [0, delay]. This is the default; it spreads out
	// retry storms from many callers hitting the same failure.
	JitterFull Jitter = "full"

	// JitterNone uses the computed delay unmodified, giving a
	// deterministic, strictly non-decreasing delay sequence.
	JitterNone Jitter = "none"
)

// Unlimited disables a bound when assigned to [Config.MaxTries] or
// [Config.MaxTime].
const Unlimited = -1

// Defaults applied by [Config.withDefaults] for zero-valued fields.
const (
	DefaultMaxTries  = 5
	DefaultMaxTime   = 30 * time.Second
	DefaultBaseDelay = 500 * time.Millisecond
	DefaultMaxDelay  = 3 * time.Second
)

// Config describes a retry policy. The zero value is usable and is
// equivalent to {MaxTries: 5, MaxTime: 30s, Jitter: full, BaseDelay:
// 500ms, MaxDelay: 3s}. A Config is immutable once built; the same
// value may be shared by any number of goroutines.
type Config struct {
	// MaxTries is the total number of attempts, counting the first
	// one. [Unlimited] removes the bound.
	MaxTries int

	// MaxTime caps the total wall-clock time spent across attempts
	// and backoff sleeps, measured from the first attempt. A final
	// sleep is clamped so the budget is never exceeded. [Unlimited]
	// removes the bound.
	MaxTime time.Duration

	// Jitter selects the jitter strategy for computed delays.
	Jitter Jitter

	// BaseDelay is the delay before the first retry; each subsequent
	// delay doubles it.
	BaseDelay time.Duration

	// MaxDelay caps a single computed delay, before jitter.
	MaxDelay time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxTries == 0 {
		c.MaxTries = DefaultMaxTries
	}
	if c.MaxTime == 0 {
		c.MaxTime = DefaultMaxTime
	}
	if c.Jitter == "" {
		c.Jitter = JitterFull
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = DefaultBaseDelay
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = DefaultMaxDelay
	}
	return c
}

// Delay returns the backoff delay to sleep after the given failed
// attempt (1-based): BaseDelay doubled per attempt, capped at MaxDelay,
// with the configured jitter applied. With [JitterNone] successive
// delays are deterministic and non-decreasing.
func (c Config) Delay(attempt int) time.Duration {
	c = c.withDefaults()

	d := c.BaseDelay
	for i := 1; i < attempt && d < c.MaxDelay; i++ {
		d *= 2
	}
	if d > c.MaxDelay {
		d = c.MaxDelay
	}

	if c.Jitter == JitterFull && d > 0 {
		d = rand.N(d + 1)
	}

	return d
}
