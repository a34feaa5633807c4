package failure

import (
	"context"

	"github.com/ASURA2123/asuraclient-fca-unofficial/observe"
)

// Context keys for failure-related values.
type contextKey int

const opKey contextKey = iota

// WithOp returns a new context with the given operation attached.
func WithOp(ctx context.Context, op observe.Op) context.Context {
	return context.WithValue(ctx, opKey, op)
}

// OpFromContext retrieves the operation from the context.
// The second return is false when no operation is present.
func OpFromContext(ctx context.Context) (observe.Op, bool) {
	op, ok := ctx.Value(opKey).(observe.Op)
	return op, ok
}

// OpNameFromContext retrieves the operation name from the context.
// Returns empty string if no operation is present.
func OpNameFromContext(ctx context.Context) string {
	op, _ := OpFromContext(ctx)
	return op.Name
}
