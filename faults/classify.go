package faults

import (
	"context"
	"errors"
	"net"
	"syscall"

	"github.com/golang-jwt/jwt/v5"
)

// DetailOriginalError is the details key under which From preserves the
// text of an unrecognized error.
const DetailOriginalError = "originalError"

// From classifies an arbitrary error into a Fault.
//
// A recognized Fault passes through unchanged, matching the re-raise
// policy of the failure handler. Well-known transport and session
// failures are narrowed to their sub-case codes. Anything else is
// wrapped as a Network fault with the original error text preserved
// under details.originalError, so the boundary always surfaces a
// typed, classified failure. From(nil) returns nil.
func From(err error) *Fault {
	if err == nil {
		return nil
	}

	var f *Fault
	if errors.As(err, &f) {
		return f
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return wrapUnrecognized(Network, CodeNetworkTimeout, "operation timed out", err)
	case errors.Is(err, context.Canceled):
		return wrapUnrecognized(Unknown, CodeOperationCancelled, "operation cancelled", err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return wrapUnrecognized(Authentication, CodeAuthSessionExpired, "session token expired", err)
	case errors.Is(err, syscall.ECONNREFUSED):
		return wrapUnrecognized(Network, CodeNetworkConnectionFailed, "connection refused", err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return wrapUnrecognized(Network, CodeNetworkTimeout, "network timeout", err)
	}

	return wrapUnrecognized(Network, CodeNetwork, err.Error(), err)
}

func wrapUnrecognized(kind Kind, code, message string, err error) *Fault {
	f := Wrap(kind, message, err)
	f.Code = code
	return f.WithDetail(DetailOriginalError, err.Error())
}
