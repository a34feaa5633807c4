package retry

import (
	"math"
	"time"
)

// Policy is the retry allowance for one error code.
type Policy struct {
	// MaxRetries is the number of retries granted after the initial
	// attempt. Zero means the code is registered but never retried.
	MaxRetries int

	// Delay is the pause before each retry.
	Delay time.Duration

	// BackoffFactor scales Delay per attempt when greater than 1: the
	// nth retry waits Delay * BackoffFactor^(n-1), capped by MaxDelay.
	// Zero or 1 keeps the fixed per-code delay.
	BackoffFactor float64

	// MaxDelay caps the scaled delay. Zero means no cap.
	MaxDelay time.Duration
}

// DelayFor returns the pause before the given retry attempt (1-based).
func (p Policy) DelayFor(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if p.BackoffFactor <= 1 {
		return p.Delay
	}

	scaled := float64(p.Delay) * math.Pow(p.BackoffFactor, float64(attempt-1))
	d := time.Duration(scaled)
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	return d
}
