// Package cache provides bounded, time-aware memoization for client
// operations.
//
// It provides a capacity-bounded Store with per-entry expiry and
// insertion-order eviction, SHA-256 fingerprinting of operation
// inputs, and a Memoizer that shares in-flight executions per
// fingerprint. Expiry is lazy: expired entries linger until the next
// lookup touches them, and there is no background sweep.
package cache
