// Package faults defines the error contract shared by every client
// operation: a closed taxonomy of failure kinds, stable string codes, a
// fixed catalog of short external codes, and the uniform response
// record surfaced to callers.
//
// # Taxonomy
//
// Every failure is represented by a single Fault record carrying a Kind
// (Authentication, Network, Validation, Configuration, Security,
// Database, Unknown), a stable code, a human-readable message, an
// optional details map, and the time the fault was raised. Kind→code is
// a fixed 1:1 mapping (Authentication → AUTH_ERROR); constructors may
// narrow the code to a symbolic sub-case such as NETWORK_TIMEOUT, which
// is what the retry policy table and the catalog key on.
//
// # Classification
//
// From converts any error into a Fault. Recognized Faults pass through
// unchanged; well-known transport and session failures are narrowed to
// their sub-case codes; everything else becomes a Network fault with
// the original error text preserved under details.originalError. A
// caller at the boundary therefore always receives a typed, classified
// failure, never a raw unknown one.
//
// # Responses
//
// NewResponse turns any error into the uniform Response record:
//
//	{error: true, message, code, errorCode, details, timestamp}
//
// where errorCode is the catalog translation of the internal code
// (falling back to ERR_GENERAL_01 for codes without a catalog entry)
// and message has passed through SafeMessage, so Security faults never
// leak their original text.
package faults
