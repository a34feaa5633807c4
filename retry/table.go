package retry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ASURA2123/asuraclient-fca-unofficial/faults"
)

// Table maps error codes to retry policies. Codes absent from the
// table are not retryable.
type Table struct {
	mu       sync.RWMutex
	policies map[string]Policy
}

// NewTable creates an empty policy table.
func NewTable() *Table {
	return &Table{policies: make(map[string]Policy)}
}

// DefaultTable returns a table preloaded with the stock policies:
//
//	NETWORK_TIMEOUT            3 retries, 1s delay
//	NETWORK_CONNECTION_FAILED  3 retries, 2s delay
//	AUTH_SESSION_EXPIRED       1 retry, no delay
func DefaultTable() *Table {
	t := NewTable()
	t.policies[faults.CodeNetworkTimeout] = Policy{MaxRetries: 3, Delay: time.Second}
	t.policies[faults.CodeNetworkConnectionFailed] = Policy{MaxRetries: 3, Delay: 2 * time.Second}
	t.policies[faults.CodeAuthSessionExpired] = Policy{MaxRetries: 1}
	return t
}

// Register adds or replaces the policy for a code. This is the
// extension point for configuration to widen the default table.
func (t *Table) Register(code string, p Policy) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errors.New("retry: policy code is required")
	}
	if p.MaxRetries < 0 {
		return fmt.Errorf("retry: negative MaxRetries for %s", code)
	}
	if p.Delay < 0 || p.MaxDelay < 0 {
		return fmt.Errorf("retry: negative delay for %s", code)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.policies[code] = p
	return nil
}

// Deregister removes a code from the table, making it non-retryable.
func (t *Table) Deregister(code string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.policies, code)
}

// Lookup returns the policy for a code.
func (t *Table) Lookup(code string) (Policy, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.policies[code]
	return p, ok
}

// Codes returns the registered codes, sorted.
func (t *Table) Codes() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	codes := make([]string, 0, len(t.policies))
	for code := range t.policies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
