package benchmark

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/yndnr/memod/internal/core/domain"
	"github.com/yndnr/memod/internal/storage/memory"
)

// MemoCounts defines the table sizes for benchmarking.
var MemoCounts = []int{1000, 10000, 100000}

// prefillStore creates count memos and returns the store.
func prefillStore(ctx context.Context, count int) *memory.Store {
	store := memory.New()
	for i := 0; i < count; i++ {
		store.Create(ctx, domain.Draft(fmt.Sprintf("memo %d", i), "benchmark contents"))
	}
	return store
}

// reportMemory reports heap usage after a benchmark.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.Alloc)/(1024*1024), prefix+"_MB")
	b.ReportMetric(float64(m.NumGC), prefix+"_GC")
}

// runWithMemoCounts runs a benchmark function with various table sizes.
func runWithMemoCounts(b *testing.B, benchFn func(b *testing.B, count int)) {
	for _, count := range MemoCounts {
		b.Run(fmt.Sprintf("memos_%d", count), func(b *testing.B) {
			benchFn(b, count)
		})
	}
}
