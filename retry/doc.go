// Package retry implements cross-call retry bookkeeping for client
// operations: a table of per-error-code policies and a coordinator
// that tracks attempt budgets spanning individual calls.
//
// Only codes registered in the policy Table are retryable; every other
// code short-circuits to "do not retry" no matter what the caller
// asked for. The stock table covers transient transport failures
// (NETWORK_TIMEOUT, NETWORK_CONNECTION_FAILED) and expired sessions
// (AUTH_SESSION_EXPIRED, retried once with no delay so a re-login can
// be attempted immediately).
//
// A budget moves through three states per code: idle, retrying(n), and
// exhausted. Each retryable failure advances the counter; success
// clears it; exceeding the allowance resets it to zero and reports
// exhaustion, leaving the code immediately eligible for a fresh cycle
// on its next failure. There is no cooldown window.
//
// Budgets default to process-wide scope keyed by error code alone, so
// concurrent operations failing with the same code advance one shared
// counter. That aggregation is deliberate; configure Config.Scope with
// PerOpScope (or a custom ScopeFunc) to key budgets by operation.
package retry
