package failure

import (
	"context"

	"github.com/ASURA2123/asuraclient-fca-unofficial/faults"
	"github.com/ASURA2123/asuraclient-fca-unofficial/observe"
)

// Result is the single outcome record of an asynchronous execution.
type Result[T any] struct {
	Value T
	Fault *faults.Fault
}

// Err returns the fault as an error, nil when the execution succeeded.
func (r Result[T]) Err() error {
	if r.Fault == nil {
		return nil
	}
	return r.Fault
}

// Go runs fn asynchronously under the handler's failure policy and
// delivers exactly one Result on the returned channel. The channel is
// buffered, so the result is never lost to a slow receiver.
func Go[T any](ctx context.Context, h *Handler, op observe.Op, fn func(context.Context) (T, error)) <-chan Result[T] {
	out := make(chan Result[T], 1)
	go func() {
		defer close(out)
		v, err := Do(ctx, h, op, fn)
		out <- newResult(v, err)
	}()
	return out
}

// Callback runs fn asynchronously under the handler's failure policy and
// invokes done exactly once with the final outcome. A nil done discards
// the outcome.
func Callback[T any](ctx context.Context, h *Handler, op observe.Op, fn func(context.Context) (T, error), done func(T, error)) {
	go func() {
		v, err := Do(ctx, h, op, fn)
		if done != nil {
			done(v, err)
		}
	}()
}

func newResult[T any](v T, err error) Result[T] {
	if err == nil {
		return Result[T]{Value: v}
	}
	return Result[T]{Value: v, Fault: faults.From(err)}
}
