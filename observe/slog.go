package observe

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// slogLogger adapts a *slog.Logger to the Logger interface, so callers
// already standardized on log/slog can plug their handler chain in.
type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps an slog.Logger. The same credential redaction as
// NewLogger applies to fields passed through this bridge; attributes
// attached directly to the slog handler are not inspected.
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return &slogLogger{l: l}
}

// NewTintLogger returns a Logger writing colorized human-readable lines
// to w. Meant for development runs; production deployments should prefer
// the JSON output of NewLogger.
func NewTintLogger(w io.Writer, level string) Logger {
	h := tint.NewHandler(w, &tint.Options{
		Level:      slogLevel(ParseLogLevel(level)),
		TimeFormat: time.Kitchen,
	})
	return NewSlogLogger(slog.New(h))
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (s *slogLogger) Info(ctx context.Context, msg string, fields ...Field) {
	s.log(ctx, slog.LevelInfo, msg, fields)
}

func (s *slogLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	s.log(ctx, slog.LevelWarn, msg, fields)
}

func (s *slogLogger) Error(ctx context.Context, msg string, fields ...Field) {
	s.log(ctx, slog.LevelError, msg, fields)
}

func (s *slogLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	s.log(ctx, slog.LevelDebug, msg, fields)
}

func (s *slogLogger) log(ctx context.Context, level slog.Level, msg string, fields []Field) {
	if !s.l.Enabled(ctx, level) {
		return
	}
	attrs := make([]slog.Attr, 0, len(fields))
	for _, f := range fields {
		if isRedactedField(f.Key) {
			attrs = append(attrs, slog.String(f.Key, "[REDACTED]"))
			continue
		}
		attrs = append(attrs, slog.Any(f.Key, f.Value))
	}
	s.l.LogAttrs(ctx, level, msg, attrs...)
}

// WithOp returns a logger with operation context attached.
func (s *slogLogger) WithOp(op Op) Logger {
	args := []any{"op.id", op.OpID(), "op.name", op.Name}
	if op.Area != "" {
		args = append(args, "op.area", op.Area)
	}
	return &slogLogger{l: s.l.With(args...)}
}

var _ Logger = (*slogLogger)(nil)
