package failure

import (
	"context"
	"testing"

	"github.com/ASURA2123/asuraclient-fca-unofficial/faults"
	"github.com/ASURA2123/asuraclient-fca-unofficial/observe"
)

// BenchmarkHandler_Handle measures the non-retry pipeline.
func BenchmarkHandler_Handle(b *testing.B) {
	h := NewHandler(Config{})
	f := faults.NewCode(faults.CodeValidationMissingParam, "threadID is required")
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			h.Handle(ctx, f, Options{})
		}
	})
}

// BenchmarkDo_Success measures the runner overhead on the happy path.
func BenchmarkDo_Success(b *testing.B) {
	h := NewHandler(Config{})
	op := observe.Op{Area: "thread", Name: "sendMessage"}
	ctx := context.Background()
	fn := func(ctx context.Context) (string, error) { return "mid.12345", nil }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Do(ctx, h, op, fn); err != nil {
			b.Fatal(err)
		}
	}
}
