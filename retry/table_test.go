package retry

import (
	"testing"
	"time"

	"github.com/ASURA2123/asuraclient-fca-unofficial/faults"
)

func TestDefaultTable_StockPolicies(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		code       string
		maxRetries int
		delay      time.Duration
	}{
		{faults.CodeNetworkTimeout, 3, time.Second},
		{faults.CodeNetworkConnectionFailed, 3, 2 * time.Second},
		{faults.CodeAuthSessionExpired, 1, 0},
	}

	for _, tt := range tests {
		p, ok := table.Lookup(tt.code)
		if !ok {
			t.Errorf("Lookup(%q) should find a stock policy", tt.code)
			continue
		}
		if p.MaxRetries != tt.maxRetries {
			t.Errorf("%s MaxRetries = %d, want %d", tt.code, p.MaxRetries, tt.maxRetries)
		}
		if p.Delay != tt.delay {
			t.Errorf("%s Delay = %v, want %v", tt.code, p.Delay, tt.delay)
		}
	}

	if got := len(table.Codes()); got != len(tests) {
		t.Errorf("DefaultTable has %d codes, want %d", got, len(tests))
	}

	// Everything else is non-retryable out of the box.
	for _, code := range []string{
		faults.CodeNetworkRequestFailed,
		faults.CodeAuthLoginFailed,
		faults.CodeValidation,
		"",
	} {
		if _, ok := table.Lookup(code); ok {
			t.Errorf("Lookup(%q) should miss, only stock codes are retryable", code)
		}
	}
}

func TestTable_RegisterAndOverride(t *testing.T) {
	table := DefaultTable()

	// Configuration can widen the table...
	err := table.Register(faults.CodeNetworkRateLimited, Policy{MaxRetries: 5, Delay: 4 * time.Second})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, ok := table.Lookup(faults.CodeNetworkRateLimited); !ok {
		t.Error("registered code should be retryable")
	}

	// ...and replace a stock policy.
	err = table.Register(faults.CodeNetworkTimeout, Policy{MaxRetries: 1, Delay: 100 * time.Millisecond})
	if err != nil {
		t.Fatalf("Register override failed: %v", err)
	}
	p, _ := table.Lookup(faults.CodeNetworkTimeout)
	if p.MaxRetries != 1 {
		t.Errorf("override not applied, MaxRetries = %d", p.MaxRetries)
	}
}

func TestTable_RegisterValidation(t *testing.T) {
	table := NewTable()

	if err := table.Register("", Policy{MaxRetries: 1}); err == nil {
		t.Error("Register with an empty code should fail")
	}
	if err := table.Register("  ", Policy{MaxRetries: 1}); err == nil {
		t.Error("Register with a blank code should fail")
	}
	if err := table.Register("X", Policy{MaxRetries: -1}); err == nil {
		t.Error("Register with negative MaxRetries should fail")
	}
	if err := table.Register("X", Policy{MaxRetries: 1, Delay: -time.Second}); err == nil {
		t.Error("Register with a negative delay should fail")
	}
}

func TestTable_Deregister(t *testing.T) {
	table := DefaultTable()
	table.Deregister(faults.CodeNetworkTimeout)

	if _, ok := table.Lookup(faults.CodeNetworkTimeout); ok {
		t.Error("deregistered code should not be retryable")
	}
	// Removing a missing code is a no-op.
	table.Deregister("NO_SUCH_CODE")
}

func TestTable_CodesSorted(t *testing.T) {
	table := DefaultTable()
	codes := table.Codes()

	for i := 1; i < len(codes); i++ {
		if codes[i-1] > codes[i] {
			t.Errorf("Codes() not sorted: %v", codes)
			break
		}
	}
}
