package cache

import (
	"fmt"
	"testing"
	"time"
)

func BenchmarkStore_Get(b *testing.B) {
	s := New(Config{Capacity: 1000, DefaultTTL: time.Hour})
	for i := 0; i < 1000; i++ {
		s.Set(fmt.Sprintf("k%d", i), i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			s.Get(fmt.Sprintf("k%d", i%1000))
			i++
		}
	})
}

func BenchmarkStore_Set(b *testing.B) {
	s := New(Config{Capacity: 1000, DefaultTTL: time.Hour})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Set(fmt.Sprintf("k%d", i%2000), i)
	}
}

func BenchmarkFingerprintKeyer(b *testing.B) {
	keyer := FingerprintKeyer{}
	input := map[string]any{
		"threadID": "t-100",
		"limit":    50,
		"before":   "2024-01-01T00:00:00Z",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := keyer.Fingerprint("history", input); err != nil {
			b.Fatal(err)
		}
	}
}
