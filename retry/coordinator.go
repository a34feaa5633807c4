package retry

import (
	"context"
	"sync"
	"time"
)

// ScopeFunc derives the budget key for a failure from its error code
// and the operation that raised it.
type ScopeFunc func(code, op string) string

// GlobalScope keys budgets by error code alone. Operations that fail
// with the same code share one budget regardless of call-site.
func GlobalScope(code, _ string) string { return code }

// PerOpScope keys budgets by (code, operation), giving each operation
// an independent allowance. An empty operation falls back to the
// code alone.
func PerOpScope(code, op string) string {
	if op == "" {
		return code
	}
	return code + "|" + op
}

// Config configures a Coordinator.
type Config struct {
	// Table is the policy table consulted for retryability.
	// Default: DefaultTable().
	Table *Table

	// Scope derives budget keys. Default: GlobalScope.
	Scope ScopeFunc
}

// Coordinator decides whether failed operations should be retried and
// tracks attempt budgets across calls.
//
// Budgets are created lazily on the first retryable failure for a
// scope key and live for the life of the process. With the default
// global scope, unrelated call-sites failing with the same error code
// advance one shared counter.
type Coordinator struct {
	table *Table
	scope ScopeFunc

	mu      sync.Mutex
	budgets map[string]int
}

// NewCoordinator creates a coordinator, applying defaults for any
// zero-valued Config field.
func NewCoordinator(config Config) *Coordinator {
	if config.Table == nil {
		config.Table = DefaultTable()
	}
	if config.Scope == nil {
		config.Scope = GlobalScope
	}
	return &Coordinator{
		table:   config.Table,
		scope:   config.Scope,
		budgets: make(map[string]int),
	}
}

// PolicyFor returns the table policy for a code.
func (c *Coordinator) PolicyFor(code string) (Policy, bool) {
	return c.table.Lookup(code)
}

// ShouldRetry reports whether a failure with this code is retryable at
// all: the code must be registered in the policy table and the
// caller's allowance must be positive.
func (c *Coordinator) ShouldRetry(code string, maxRetries int) bool {
	if maxRetries <= 0 {
		return false
	}
	_, ok := c.table.Lookup(code)
	return ok
}

// NextAttempt records a retryable failure and returns the 1-based
// attempt number granted. When the budget is already spent it resets
// the counter to zero and returns retry=false: the caller surfaces the
// original error, and the very next failure with this code starts a
// fresh cycle. A maxRetries <= 0 falls back to the table policy's
// allowance.
func (c *Coordinator) NextAttempt(code, op string, maxRetries int) (attempt int, retry bool) {
	p, ok := c.table.Lookup(code)
	if !ok {
		return 0, false
	}
	if maxRetries <= 0 {
		maxRetries = p.MaxRetries
	}
	if maxRetries <= 0 {
		return 0, false
	}

	key := c.scope(code, op)
	c.mu.Lock()
	defer c.mu.Unlock()

	if n := c.budgets[key]; n < maxRetries {
		c.budgets[key] = n + 1
		return n + 1, true
	}
	c.budgets[key] = 0
	return 0, false
}

// Wait pauses the caller for the delay the code's policy prescribes
// before the given retry attempt. It returns ctx.Err() as soon as the
// context is cancelled, so abandoning an operation also abandons its
// pending retry. Unregistered codes and zero delays return
// immediately.
func (c *Coordinator) Wait(ctx context.Context, code string, attempt int) error {
	p, ok := c.table.Lookup(code)
	if !ok {
		return ctx.Err()
	}
	delay := p.DelayFor(attempt)
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// OnSuccess clears the budget for a code after a successful attempt.
func (c *Coordinator) OnSuccess(code, op string) {
	key := c.scope(code, op)
	c.mu.Lock()
	delete(c.budgets, key)
	c.mu.Unlock()
}

// Attempts reports the recorded attempt count for a code under the
// coordinator's scope. Exposed for tests and diagnostics.
func (c *Coordinator) Attempts(code, op string) int {
	key := c.scope(code, op)
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.budgets[key]
}

// Reset clears the budget for a single code.
func (c *Coordinator) Reset(code, op string) {
	c.OnSuccess(code, op)
}

// ResetAll clears every budget.
func (c *Coordinator) ResetAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.budgets)
}
