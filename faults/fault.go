package faults

import (
	"errors"
	"fmt"
	"time"
)

// securityMessage replaces the original message of Security faults in
// any externally visible output.
const securityMessage = "A security error occurred. Please try again later."

// Fault is the standard error record for client operations.
//
// A Fault carries the failure's Kind, a stable code, a human-readable
// message, an optional details map, and the time the fault was raised.
// Builder methods (WithCode, WithDetails, WithDetail) are for use at
// construction time; once a Fault has been handed to a caller it is
// treated as immutable.
type Fault struct {
	Kind      Kind
	Code      string
	Message   string
	Details   map[string]any
	Timestamp time.Time

	cause error
}

var _ error = (*Fault)(nil)

// New creates a Fault of the given kind. The code defaults to the
// kind's own code; use WithCode to narrow it to a sub-case.
func New(kind Kind, message string) *Fault {
	return &Fault{
		Kind:      kind,
		Code:      kind.Code(),
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Newf creates a Fault with a formatted message.
func Newf(kind Kind, format string, args ...any) *Fault {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap creates a Fault that records err as its cause. The cause is
// reachable through errors.Unwrap but is never serialized.
func Wrap(kind Kind, message string, err error) *Fault {
	f := New(kind, message)
	f.cause = err
	return f
}

// NewCode creates a Fault for a symbolic sub-case code, inferring the
// kind from the code's prefix.
func NewCode(code, message string) *Fault {
	f := New(KindForCode(code), message)
	f.Code = code
	return f
}

// WithCode narrows the fault to a symbolic sub-case code such as
// NETWORK_TIMEOUT. The kind is left unchanged.
func (f *Fault) WithCode(code string) *Fault {
	f.Code = code
	return f
}

// WithDetails replaces the details map. Details must arrive
// pre-sanitized; the fault core does not scrub fields.
func (f *Fault) WithDetails(details map[string]any) *Fault {
	f.Details = details
	return f
}

// WithDetail sets a single details entry.
func (f *Fault) WithDetail(key string, value any) *Fault {
	if f.Details == nil {
		f.Details = make(map[string]any, 1)
	}
	f.Details[key] = value
	return f
}

func (f *Fault) Error() string {
	if f == nil {
		return "<nil>"
	}
	if f.cause != nil {
		return fmt.Sprintf("%s: %s (%v)", f.Code, f.Message, f.cause)
	}
	return fmt.Sprintf("%s: %s", f.Code, f.Message)
}

// Unwrap returns the wrapped cause, if any.
func (f *Fault) Unwrap() error { return f.cause }

// SafeMessage returns the message suitable for external display.
// Security faults always yield a fixed generic sentence regardless of
// the original message; every other kind yields the message as-is.
func (f *Fault) SafeMessage() string {
	if f.Kind == Security {
		return securityMessage
	}
	return f.Message
}

// Is reports whether err is (or wraps) a Fault carrying the given code.
func Is(err error, code string) bool {
	var f *Fault
	if errors.As(err, &f) {
		return f.Code == code
	}
	return false
}

// KindOf returns the Kind of err when it is (or wraps) a Fault. The
// second return is false for any other error.
func KindOf(err error) (Kind, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind, true
	}
	return Unknown, false
}
