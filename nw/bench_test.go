package nw_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqalign/nw"
)

// benchmarkScore runs nw.Score on random sequences of lengths n and m.
func benchmarkScore(b *testing.B, n, m int, strategy nw.Strategy) {
	rng := rand.New(rand.NewSource(42))
	x, y := randomDNA(rng, n), randomDNA(rng, m)
	opts := nw.DefaultOptions()
	opts.Strategy = strategy
	s := nw.DefaultScoring()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := nw.Score(x, y, s, &opts); err != nil {
			b.Fatalf("Score failed: %v", err)
		}
	}
}

func BenchmarkScore_SweepSmall(b *testing.B)     { benchmarkScore(b, 100, 100, nw.Sweep) }
func BenchmarkScore_SweepLarge(b *testing.B)     { benchmarkScore(b, 2000, 2000, nw.Sweep) }
func BenchmarkScore_DescentSmall(b *testing.B)   { benchmarkScore(b, 100, 100, nw.Descent) }
func BenchmarkScore_DescentLarge(b *testing.B)   { benchmarkScore(b, 2000, 2000, nw.Descent) }
func BenchmarkScore_WavefrontSmall(b *testing.B) { benchmarkScore(b, 100, 100, nw.Wavefront) }
func BenchmarkScore_WavefrontLarge(b *testing.B) { benchmarkScore(b, 2000, 2000, nw.Wavefront) }
