package hull

import (
	"fmt"
	"testing"
)

func benchmarkEngine(b *testing.B, run func([]Vec) int, dist Distribution, n int) {
	gen := NewGenerator(Config{Distribution: dist, Seed: 1})
	points := make([]Vec, n)
	gen.Fill(points)

	scratch := make([]Vec, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(scratch, points)
		run(scratch)
	}
}

func BenchmarkQuickHull(b *testing.B) {
	for _, dist := range []Distribution{Disc, Ring, Circle, Clusters} {
		for _, n := range []int{1_000, 100_000} {
			b.Run(fmt.Sprintf("%s-%d", dist, n), func(b *testing.B) {
				benchmarkEngine(b, QuickHull, dist, n)
			})
		}
	}
}

func BenchmarkGrahamScan(b *testing.B) {
	for _, dist := range []Distribution{Disc, Ring, Circle, Clusters} {
		for _, n := range []int{1_000, 100_000} {
			b.Run(fmt.Sprintf("%s-%d", dist, n), func(b *testing.B) {
				benchmarkEngine(b, GrahamScan, dist, n)
			})
		}
	}
}
