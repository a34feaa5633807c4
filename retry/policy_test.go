package retry

import (
	"testing"
	"time"
)

func TestPolicy_DelayFor_Fixed(t *testing.T) {
	p := Policy{MaxRetries: 3, Delay: time.Second}

	for attempt := 1; attempt <= 5; attempt++ {
		if got := p.DelayFor(attempt); got != time.Second {
			t.Errorf("DelayFor(%d) = %v, want fixed 1s", attempt, got)
		}
	}
}

func TestPolicy_DelayFor_Backoff(t *testing.T) {
	p := Policy{
		MaxRetries:    5,
		Delay:         100 * time.Millisecond,
		BackoffFactor: 2,
		MaxDelay:      500 * time.Millisecond,
	}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 400 * time.Millisecond},
		{4, 500 * time.Millisecond}, // capped
		{5, 500 * time.Millisecond},
		{0, 100 * time.Millisecond}, // clamped to first attempt
	}

	for _, tt := range tests {
		if got := p.DelayFor(tt.attempt); got != tt.want {
			t.Errorf("DelayFor(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestPolicy_DelayFor_FactorOfOneStaysFixed(t *testing.T) {
	p := Policy{Delay: 250 * time.Millisecond, BackoffFactor: 1}
	if got := p.DelayFor(4); got != 250*time.Millisecond {
		t.Errorf("DelayFor(4) = %v, want fixed delay with factor 1", got)
	}
}

func TestPolicy_DelayFor_ZeroDelay(t *testing.T) {
	p := Policy{MaxRetries: 1}
	if got := p.DelayFor(1); got != 0 {
		t.Errorf("DelayFor(1) = %v, want 0", got)
	}
}
