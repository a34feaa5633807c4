package faults

import (
	"errors"
	"time"
)

// defaultMessage is used when an unrecognized error has no message of
// its own.
const defaultMessage = "An unknown error occurred"

// Response is the uniform record returned to any caller of a failing
// operation. Error is always true. Code is the internal code and
// ErrorCode its catalog translation. Timestamp is the moment the fault
// was raised, not the moment the response was built.
type Response struct {
	Error     bool           `json:"error"`
	Message   string         `json:"message"`
	Code      string         `json:"code"`
	ErrorCode string         `json:"errorCode"`
	Details   map[string]any `json:"details"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewResponse converts any error into a Response.
//
// A recognized Fault keeps its own code, details, and timestamp, with
// the message passed through SafeMessage. Unrecognized errors, and nil,
// produce an UNKNOWN_ERROR record stamped now. Details is never nil.
func NewResponse(err error) Response {
	var f *Fault
	if errors.As(err, &f) {
		details := f.Details
		if details == nil {
			details = map[string]any{}
		}
		return Response{
			Error:     true,
			Message:   f.SafeMessage(),
			Code:      f.Code,
			ErrorCode: CatalogCode(f.Code),
			Details:   details,
			Timestamp: f.Timestamp,
		}
	}

	msg := defaultMessage
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return Response{
		Error:     true,
		Message:   msg,
		Code:      CodeUnknown,
		ErrorCode: FallbackCatalogCode,
		Details:   map[string]any{},
		Timestamp: time.Now(),
	}
}
