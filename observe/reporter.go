package observe

import (
	"context"

	"github.com/ASURA2123/asuraclient-fca-unofficial/faults"
)

// Reporter delivers error responses to an external sink.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: Report must honor cancellation/deadlines and return quickly.
// - Errors: reporting is best-effort; implementations must not panic and
//   never influence the outcome of the operation that produced the response.
type Reporter interface {
	Report(ctx context.Context, resp faults.Response)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(ctx context.Context, resp faults.Response)

func (f ReporterFunc) Report(ctx context.Context, resp faults.Response) { f(ctx, resp) }

// LogReporter writes reported responses through a Logger at error level.
type LogReporter struct {
	logger Logger
}

// NewLogReporter creates a LogReporter. A nil logger reports nowhere.
func NewLogReporter(l Logger) *LogReporter {
	return &LogReporter{logger: l}
}

func (r *LogReporter) Report(ctx context.Context, resp faults.Response) {
	if r.logger == nil {
		return
	}
	r.logger.Error(ctx, "error reported",
		Field{Key: "error.code", Value: resp.Code},
		Field{Key: "error.catalog", Value: resp.ErrorCode},
		Field{Key: "error.message", Value: resp.Message},
	)
}

// MultiReporter fans each report out to every sink in order.
type MultiReporter struct {
	// Reporters is the ordered list of sinks to deliver to.
	Reporters []Reporter
}

// NewMultiReporter creates a reporter that delivers to each sink in turn.
// Nil entries are skipped.
func NewMultiReporter(reporters ...Reporter) *MultiReporter {
	return &MultiReporter{Reporters: reporters}
}

func (m *MultiReporter) Report(ctx context.Context, resp faults.Response) {
	for _, r := range m.Reporters {
		if ctx.Err() != nil {
			return
		}
		if r == nil {
			continue
		}
		r.Report(ctx, resp)
	}
}

var _ Reporter = (ReporterFunc)(nil)
var _ Reporter = (*LogReporter)(nil)
var _ Reporter = (*MultiReporter)(nil)
