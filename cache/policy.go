package cache

import "time"

// Policy configures memoization behavior.
type Policy struct {
	// DefaultTTL is the TTL applied to memoized results.
	// If zero, memoization is disabled.
	DefaultTTL time.Duration

	// MaxTTL is the maximum allowed TTL. Override TTLs are clamped
	// to this. If zero, no maximum is enforced.
	MaxTTL time.Duration

	// AllowMutating permits memoizing operations tagged as mutating
	// (send, delete, and so on). Off by default.
	AllowMutating bool
}

// DefaultPolicy returns the stock memoization policy:
// DefaultTTL 5 minutes, MaxTTL 1 hour, mutating operations excluded.
func DefaultPolicy() Policy {
	return Policy{
		DefaultTTL: 5 * time.Minute,
		MaxTTL:     time.Hour,
	}
}

// DisabledPolicy returns a policy that disables memoization entirely.
func DisabledPolicy() Policy {
	return Policy{}
}

// ShouldMemoize reports whether this policy enables memoization.
func (p Policy) ShouldMemoize() bool {
	return p.DefaultTTL > 0
}

// EffectiveTTL returns the TTL to use, applying the default and
// clamping to MaxTTL.
func (p Policy) EffectiveTTL(override time.Duration) time.Duration {
	ttl := override
	if ttl <= 0 {
		ttl = p.DefaultTTL
	}
	if p.MaxTTL > 0 && ttl > p.MaxTTL {
		ttl = p.MaxTTL
	}
	return ttl
}
