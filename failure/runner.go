package failure

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/ASURA2123/asuraclient-fca-unofficial/faults"
	"github.com/ASURA2123/asuraclient-fca-unofficial/observe"
)

// Do runs fn under the handler's failure policy and returns its result.
//
// Each failed attempt is routed through Handle with retries requested;
// the loop re-runs fn while the verdict grants a retry and stops when it
// does not, returning the classified fault of the last attempt. When the
// operation descriptor carries a Timeout, every attempt runs under its
// own deadline. The whole retried execution is wrapped in one span.
func Do[T any](ctx context.Context, h *Handler, op observe.Op, fn func(context.Context) (T, error)) (T, error) {
	if h == nil {
		h = NewHandler(Config{})
	}

	ctx = WithOp(ctx, op)
	ctx, span := h.tracer.StartSpan(ctx, op)

	var (
		value     T
		err       error
		attempts  int
		lastFault *faults.Fault
	)

	for {
		value, err = runAttempt(ctx, op, fn)
		attempts++

		if err == nil {
			if lastFault != nil {
				h.OnSuccess(lastFault.Code, op.Name)
			}
			break
		}

		verdict := h.Handle(ctx, err, Options{Retry: true, Op: op.Name})
		if verdict.Fault != nil {
			lastFault = verdict.Fault
			err = verdict.Fault
		}
		if !verdict.Retry {
			break
		}
	}

	span.SetAttributes(attribute.Int("op.attempts", attempts))
	h.tracer.EndSpan(span, err)

	return value, err
}

// runAttempt executes one attempt, applying the per-attempt deadline
// when the descriptor carries one. The deadline fires even if fn ignores
// its context; an abandoned attempt keeps running but its result is
// discarded.
func runAttempt[T any](ctx context.Context, op observe.Op, fn func(context.Context) (T, error)) (T, error) {
	if op.Timeout <= 0 {
		return fn(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, op.Timeout)
	defer cancel()

	type outcome struct {
		value T
		err   error
	}
	done := make(chan outcome, 1)

	go func() {
		v, err := fn(ctx)
		done <- outcome{value: v, err: err}
	}()

	select {
	case out := <-done:
		return out.value, out.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
