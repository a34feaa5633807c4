package cache

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

// ExecFunc runs one client operation and returns its result.
type ExecFunc func(ctx context.Context, op string, input any) (any, error)

// SkipRule reports whether memoization must be skipped for an
// operation.
type SkipRule func(op string, tags []string) bool

// MutatingTags mark operations with side effects. Results of such
// operations are never memoized.
var MutatingTags = []string{"write", "send", "delete", "mutate", "danger"}

// DefaultSkipRule skips operations carrying a mutating tag.
// Tag matching is case-insensitive.
func DefaultSkipRule(_ string, tags []string) bool {
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, mutating := range MutatingTags {
			if lower == mutating {
				return true
			}
		}
	}
	return false
}

// Backend is the minimal store surface memoization needs. *Store
// satisfies it.
type Backend interface {
	Get(key string) (any, bool)
	SetTTL(key string, value any, ttl time.Duration)
}

var _ Backend = (*Store)(nil)

// Recorder receives memoization outcomes. Implementations must be
// safe for concurrent use.
type Recorder interface {
	CacheHit(ctx context.Context, op string)
	CacheMiss(ctx context.Context, op string)
}

// Memoizer wraps operation execution with fingerprint-addressed
// caching.
//
// Concurrent calls sharing a fingerprint execute once and share the
// result. Errors are never memoized. Operations that fail fingerprint
// derivation execute directly, uncached.
type Memoizer struct {
	store    Backend
	keyer    Keyer
	policy   Policy
	skip     SkipRule
	recorder Recorder
	group    singleflight.Group
}

// MemoOption customizes a Memoizer.
type MemoOption func(*Memoizer)

// WithKeyer replaces the default FingerprintKeyer.
func WithKeyer(k Keyer) MemoOption {
	return func(m *Memoizer) { m.keyer = k }
}

// WithSkipRule replaces DefaultSkipRule.
func WithSkipRule(rule SkipRule) MemoOption {
	return func(m *Memoizer) { m.skip = rule }
}

// WithRecorder registers a hit/miss recorder.
func WithRecorder(r Recorder) MemoOption {
	return func(m *Memoizer) { m.recorder = r }
}

// NewMemoizer creates a Memoizer over the given store.
func NewMemoizer(store Backend, policy Policy, opts ...MemoOption) *Memoizer {
	m := &Memoizer{
		store:  store,
		keyer:  FingerprintKeyer{},
		policy: policy,
		skip:   DefaultSkipRule,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Execute runs op through the memoization path. On a hit the cached
// result is returned without invoking exec; on a miss exec runs once
// per fingerprint and its result is stored under the policy TTL.
func (m *Memoizer) Execute(ctx context.Context, op string, input any, tags []string, exec ExecFunc) (any, error) {
	if !m.policy.AllowMutating && m.skip(op, tags) {
		return exec(ctx, op, input)
	}
	if !m.policy.ShouldMemoize() {
		return exec(ctx, op, input)
	}

	key, err := m.keyer.Fingerprint(op, input)
	if err != nil {
		return exec(ctx, op, input)
	}

	if v, ok := m.store.Get(key); ok {
		m.recordHit(ctx, op)
		return v, nil
	}

	v, err, _ := m.group.Do(key, func() (any, error) {
		// A concurrent caller may have filled the entry while this
		// one waited on the flight group.
		if v, ok := m.store.Get(key); ok {
			m.recordHit(ctx, op)
			return v, nil
		}
		m.recordMiss(ctx, op)

		v, err := exec(ctx, op, input)
		if err != nil {
			return nil, err
		}
		m.store.SetTTL(key, v, m.policy.EffectiveTTL(0))
		return v, nil
	})
	return v, err
}

func (m *Memoizer) recordHit(ctx context.Context, op string) {
	if m.recorder != nil {
		m.recorder.CacheHit(ctx, op)
	}
}

func (m *Memoizer) recordMiss(ctx context.Context, op string) {
	if m.recorder != nil {
		m.recorder.CacheMiss(ctx, op)
	}
}
