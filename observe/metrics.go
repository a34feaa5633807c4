package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records resilience counters for client operations.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// ErrorHandled records one error routed through centralized handling.
	ErrorHandled(ctx context.Context, kind, code string)

	// RetryAttempt records one granted retry attempt for an error code.
	RetryAttempt(ctx context.Context, code string, attempt int)

	// RetryExhausted records one exhausted retry budget for an error code.
	RetryExhausted(ctx context.Context, code string)

	// CacheHit records one memoized lookup served from cache.
	CacheHit(ctx context.Context, op string)

	// CacheMiss records one memoized lookup that fell through to execution.
	CacheMiss(ctx context.Context, op string)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter          metric.Meter
	errorsHandled  metric.Int64Counter
	retryAttempts  metric.Int64Counter
	retryExhausted metric.Int64Counter
	cacheHits      metric.Int64Counter
	cacheMisses    metric.Int64Counter
}

// newMetrics creates a new Metrics instance with the given meter.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	errorsHandled, err := meter.Int64Counter(
		"resilience.errors.handled",
		metric.WithDescription("Total number of errors routed through centralized handling"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	retryAttempts, err := meter.Int64Counter(
		"resilience.retry.attempts",
		metric.WithDescription("Total number of granted retry attempts"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, err
	}

	retryExhausted, err := meter.Int64Counter(
		"resilience.retry.exhausted",
		metric.WithDescription("Total number of exhausted retry budgets"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, err
	}

	cacheHits, err := meter.Int64Counter(
		"resilience.cache.hits",
		metric.WithDescription("Total number of memoized lookups served from cache"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	cacheMisses, err := meter.Int64Counter(
		"resilience.cache.misses",
		metric.WithDescription("Total number of memoized lookups that executed"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:          meter,
		errorsHandled:  errorsHandled,
		retryAttempts:  retryAttempts,
		retryExhausted: retryExhausted,
		cacheHits:      cacheHits,
		cacheMisses:    cacheMisses,
	}, nil
}

func (m *metricsImpl) ErrorHandled(ctx context.Context, kind, code string) {
	m.errorsHandled.Add(ctx, 1, metric.WithAttributes(
		attribute.String("error.kind", kind),
		attribute.String("error.code", code),
	))
}

func (m *metricsImpl) RetryAttempt(ctx context.Context, code string, attempt int) {
	m.retryAttempts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("error.code", code),
		attribute.Int("retry.attempt", attempt),
	))
}

func (m *metricsImpl) RetryExhausted(ctx context.Context, code string) {
	m.retryExhausted.Add(ctx, 1, metric.WithAttributes(
		attribute.String("error.code", code),
	))
}

func (m *metricsImpl) CacheHit(ctx context.Context, op string) {
	m.cacheHits.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op.name", op),
	))
}

func (m *metricsImpl) CacheMiss(ctx context.Context, op string) {
	m.cacheMisses.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op.name", op),
	))
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (m *noopMetrics) ErrorHandled(ctx context.Context, kind, code string)        {}
func (m *noopMetrics) RetryAttempt(ctx context.Context, code string, attempt int) {}
func (m *noopMetrics) RetryExhausted(ctx context.Context, code string)            {}
func (m *noopMetrics) CacheHit(ctx context.Context, op string)                    {}
func (m *noopMetrics) CacheMiss(ctx context.Context, op string)                   {}

var _ Metrics = (*metricsImpl)(nil)
var _ Metrics = (*noopMetrics)(nil)
