// Package failure centralizes error handling for client operations.
//
// A Handler classifies failures into faults, logs and reports them, and
// consults the retry coordinator for a verdict. The generic runner
// (Do, Go, Callback) drives the retry loop so call-sites stay free of
// error plumbing.
package failure
