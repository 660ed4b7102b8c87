package roc_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/diagmetrics/roc"
)

// benchmarkAUC is a helper that scores n synthetic samples with a fixed
// generator so every run sees the same data.
func benchmarkAUC(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(1))
	scores := make([]float64, n)
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		scores[i] = rng.Float64()
		labels[i] = i % 2 // guarantee both classes
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := roc.AUC(scores, labels); err != nil {
			b.Fatalf("AUC failed: %v", err)
		}
	}
}

// BenchmarkAUC_Small benchmarks the sweep on 100 samples.
func BenchmarkAUC_Small(b *testing.B) { benchmarkAUC(b, 100) }

// BenchmarkAUC_Medium benchmarks the sweep on 1_000 samples.
func BenchmarkAUC_Medium(b *testing.B) { benchmarkAUC(b, 1_000) }

// BenchmarkAUC_Large benchmarks the sweep on 10_000 samples.
func BenchmarkAUC_Large(b *testing.B) { benchmarkAUC(b, 10_000) }
