package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Op describes a client operation for telemetry and failure handling.
type Op struct {
	ID      string        // Fully qualified operation ID (area.name or just name)
	Area    string        // API surface area, e.g. "thread" or "login" (may be empty)
	Name    string        // Operation name (required)
	Tags    []string      // Behavior tags, e.g. "send" or "write" (optional)
	Timeout time.Duration // Per-attempt deadline enforced by the runner (0 means none)
}

// SpanName returns the deterministic span name for this operation.
// Format: client.op.<area>.<name> or client.op.<name>
func (o Op) SpanName() string {
	if o.Area != "" {
		return "client.op." + o.Area + "." + o.Name
	}
	return "client.op." + o.Name
}

// OpID returns the fully qualified operation identifier.
// If ID field is set, returns it. Otherwise constructs from area and name.
func (o Op) OpID() string {
	if o.ID != "" {
		return o.ID
	}
	if o.Area != "" {
		return o.Area + "." + o.Name
	}
	return o.Name
}

// Validate checks that the descriptor is usable.
func (o Op) Validate() error {
	if o.Name == "" {
		return ErrMissingOpName
	}
	return nil
}

// Tracer wraps OpenTelemetry tracing with operation-specific span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: StartSpan must honor cancellation/deadlines and return ctx.Err() when canceled.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a client operation.
	StartSpan(ctx context.Context, op Op) (context.Context, trace.Span)

	// EndSpan ends the span, recording any error.
	EndSpan(span trace.Span, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// newTracer creates a new Tracer wrapping the given OpenTelemetry tracer.
func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with operation metadata as attributes.
func (t *tracerImpl) StartSpan(ctx context.Context, op Op) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("op.id", op.OpID()),
		attribute.String("op.name", op.Name),
		attribute.Bool("op.error", false), // Updated in EndSpan on failure
	}

	if op.Area != "" {
		attrs = append(attrs, attribute.String("op.area", op.Area))
	}
	if len(op.Tags) > 0 {
		attrs = append(attrs, attribute.StringSlice("op.tags", op.Tags))
	}

	ctx, span := t.tracer.Start(ctx, op.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindClient),
	)

	return ctx, span
}

// EndSpan ends the span and records the error status if present.
func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("op.error", true))
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

// newNoopTracer creates a no-op tracer.
func newNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, op Op) (context.Context, trace.Span) {
	return t.noop.Start(ctx, op.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, err error) {
	span.End()
}
