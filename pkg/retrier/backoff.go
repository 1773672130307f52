package retrier

import (
	"math"
	"math/rand"
	"time"
)

// Strategy calculates the delay before a retry attempt. Implementations
// must be safe for concurrent use. Attempt starts at 1 for the first retry.
type Strategy interface {
	NextDelay(attempt int) time.Duration
}

// ExponentialBackoff grows the delay geometrically with optional jitter.
// Jitter spreads retries from concurrent callers so a flaky upstream is not
// hammered in lockstep.
type ExponentialBackoff struct {
	Initial    time.Duration
	Max        time.Duration
	Multiplier float64
	Jitter     float64
}

// NextDelay returns min(Initial * Multiplier^(attempt-1) * (1 ± Jitter), Max).
func (e ExponentialBackoff) NextDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	initial := e.Initial
	if initial == 0 {
		initial = time.Second
	}
	max := e.Max
	if max == 0 {
		max = 30 * time.Second
	}
	multiplier := e.Multiplier
	if multiplier == 0 {
		multiplier = 2
	}

	delay := float64(initial) * math.Pow(multiplier, float64(attempt-1))
	// Zero jitter stays deterministic, which tests rely on.
	if e.Jitter > 0 {
		delay *= 1 + (rand.Float64()*2-1)*e.Jitter
	}
	if delay > float64(max) {
		delay = float64(max)
	}
	return time.Duration(delay)
}

// LinearBackoff grows the delay by a fixed step per attempt.
type LinearBackoff struct {
	Step time.Duration
	Max  time.Duration
}

// NextDelay returns min(Step * attempt, Max).
func (l LinearBackoff) NextDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	step := l.Step
	if step == 0 {
		step = time.Second
	}
	max := l.Max
	if max == 0 {
		max = 30 * time.Second
	}
	delay := step * time.Duration(attempt)
	if delay > max {
		delay = max
	}
	return delay
}

// FixedBackoff waits the same delay before every retry.
type FixedBackoff struct {
	Delay time.Duration
}

// NextDelay always returns Delay, regardless of attempt number.
func (f FixedBackoff) NextDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	return f.Delay
}

// DefaultStrategy returns the exponential backoff used when no strategy is
// configured: 1s initial, doubling per attempt, 30s cap, 10% jitter.
func DefaultStrategy() Strategy {
	return ExponentialBackoff{
		Initial:    time.Second,
		Max:        30 * time.Second,
		Multiplier: 2,
		Jitter:     0.1,
	}
}
