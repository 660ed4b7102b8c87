package report_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/diagmetrics/report"
)

// benchmarkCompute is a helper that reports n synthetic samples; replicate
// count is held at 100 so the bootstrap does not dominate the comparison.
func benchmarkCompute(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(1))
	scores := make([]float64, n)
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		scores[i] = rng.Float64()
		labels[i] = i % 2
	}
	opts := report.DefaultOptions()
	opts.Bootstrap.Replicates = 100

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := report.Compute(scores, labels, &opts); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}

// BenchmarkCompute_Small benchmarks the reporter on 100 samples.
func BenchmarkCompute_Small(b *testing.B) { benchmarkCompute(b, 100) }

// BenchmarkCompute_Medium benchmarks the reporter on 1_000 samples.
func BenchmarkCompute_Medium(b *testing.B) { benchmarkCompute(b, 1_000) }
