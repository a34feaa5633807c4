// Package observe provides observability primitives for client operations.
//
// It is a pure instrumentation library: structured logging with credential
// redaction, error reporting sinks, resilience metrics, and tracing spans.
// Consumers wire an Observer into the failure handler or their own call
// sites; nothing in this package performs I/O beyond exporter setup.
package observe
