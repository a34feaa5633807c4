package failure

import (
	"context"

	"github.com/ASURA2123/asuraclient-fca-unofficial/faults"
	"github.com/ASURA2123/asuraclient-fca-unofficial/observe"
	"github.com/ASURA2123/asuraclient-fca-unofficial/retry"
)

// Config configures a Handler. Nil collaborators fall back to no-ops,
// except Reporter: a nil Reporter means reporting is disabled.
type Config struct {
	// Logger receives one record per handled failure.
	Logger observe.Logger

	// Reporter receives the uniform response for every handled failure.
	// Delivery is fire-and-forget and never blocks the caller.
	Reporter observe.Reporter

	// Coordinator decides retry verdicts. Default: stock policy table
	// with process-wide budgets.
	Coordinator *retry.Coordinator

	// Metrics records handled errors and retry counters.
	Metrics observe.Metrics

	// Tracer wraps runner executions in spans.
	Tracer observe.Tracer
}

// Options controls how a single failure is handled.
type Options struct {
	// Retry requests a retry consultation for this failure.
	Retry bool

	// MaxRetries overrides the policy allowance when positive.
	MaxRetries int

	// Op names the operation for logs, metrics, and per-op budgets.
	Op string
}

// Verdict is the outcome of handling one failure.
type Verdict struct {
	// Retry reports whether the caller should run the operation again.
	Retry bool

	// Attempt is the 1-based retry attempt granted when Retry is true.
	Attempt int

	// Fault is the classified failure. Nil only when Handle was given
	// a nil error.
	Fault *faults.Fault
}

// Handler routes every failure through one pipeline: classify, log,
// report, then consult the retry coordinator.
//
// Contract:
//   - Concurrency: safe for concurrent use.
//   - Errors: handling never replaces the original failure with a
//     synthetic one; the classified fault wraps the cause.
//   - Ownership: the returned Verdict.Fault is shared with the caller;
//     reporting sinks receive an independent response record.
type Handler struct {
	logger      observe.Logger
	reporter    observe.Reporter
	coordinator *retry.Coordinator
	metrics     observe.Metrics
	tracer      observe.Tracer
}

// NewHandler creates a Handler, applying no-op defaults for any nil
// collaborator.
func NewHandler(config Config) *Handler {
	if config.Logger == nil {
		config.Logger = observe.NopLogger()
	}
	if config.Metrics == nil {
		config.Metrics = observe.NopMetrics()
	}
	if config.Tracer == nil {
		config.Tracer = observe.NopTracer()
	}
	if config.Coordinator == nil {
		config.Coordinator = retry.NewCoordinator(retry.Config{})
	}

	return &Handler{
		logger:      config.Logger,
		reporter:    config.Reporter,
		coordinator: config.Coordinator,
		metrics:     config.Metrics,
		tracer:      config.Tracer,
	}
}

// Handle routes one failure through the pipeline and returns the verdict.
//
// A nil error returns the zero Verdict untouched. Recognized faults pass
// through unchanged; anything else is classified first. When the verdict
// grants a retry, Handle has already waited out the policy delay, so the
// caller can re-run the operation immediately. Cancellation during that
// wait withdraws the grant and surfaces the original fault.
func (h *Handler) Handle(ctx context.Context, err error, opts Options) Verdict {
	f := faults.From(err)
	if f == nil {
		return Verdict{}
	}

	opName := opts.Op
	logger := h.logger
	if op, ok := OpFromContext(ctx); ok {
		logger = logger.WithOp(op)
		if opName == "" {
			opName = op.Name
		}
	}

	kind := f.Kind.String()
	logger.Error(ctx, "operation failed",
		observe.Field{Key: "error.kind", Value: kind},
		observe.Field{Key: "error.code", Value: f.Code},
		observe.Field{Key: "error", Value: f.Error()},
	)
	h.metrics.ErrorHandled(ctx, kind, f.Code)
	h.report(ctx, f)

	if !opts.Retry {
		return Verdict{Fault: f}
	}

	attempt, granted := h.coordinator.NextAttempt(f.Code, opName, opts.MaxRetries)
	if !granted {
		if _, registered := h.coordinator.PolicyFor(f.Code); registered {
			logger.Warn(ctx, "retry budget exhausted",
				observe.Field{Key: "error.code", Value: f.Code},
			)
			h.metrics.RetryExhausted(ctx, f.Code)
		}
		return Verdict{Fault: f}
	}

	h.metrics.RetryAttempt(ctx, f.Code, attempt)
	logger.Info(ctx, "retrying operation",
		observe.Field{Key: "error.code", Value: f.Code},
		observe.Field{Key: "retry.attempt", Value: attempt},
	)

	if err := h.coordinator.Wait(ctx, f.Code, attempt); err != nil {
		return Verdict{Fault: f}
	}

	return Verdict{Retry: true, Attempt: attempt, Fault: f}
}

// OnSuccess clears the retry budget for an error code after the
// operation finally succeeds.
func (h *Handler) OnSuccess(code, op string) {
	h.coordinator.OnSuccess(code, op)
}

// Response converts any error into the uniform record handed to callers
// at the client boundary.
func (h *Handler) Response(err error) faults.Response {
	return faults.NewResponse(err)
}

// report delivers the response without ever blocking failure handling.
// The detached context keeps trace metadata but survives caller
// cancellation.
func (h *Handler) report(ctx context.Context, f *faults.Fault) {
	if h.reporter == nil {
		return
	}
	resp := faults.NewResponse(f)
	ctx = context.WithoutCancel(ctx)
	go func() {
		defer func() { _ = recover() }() // a panicking sink must not take down the client
		h.reporter.Report(ctx, resp)
	}()
}
