package graph_test

import (
	"math/rand"
	"testing"

	"github.com/torvik/algopad/graph"
)

// buildBenchGraph creates a connected directed weighted graph with n
// vertices and roughly 4n edges, deterministic across runs.
func buildBenchGraph(n int) *graph.Graph[int64] {
	g := graph.New[int64](true, n)
	r := rand.New(rand.NewSource(1))
	for i := 2; i <= n; i++ {
		_ = g.AddWeightedEdge(i-1, i, int64(1+r.Intn(50)))
	}
	for i := 0; i < 3*n; i++ {
		_ = g.AddWeightedEdge(1+r.Intn(n), 1+r.Intn(n), int64(1+r.Intn(50)))
	}

	return g
}

func BenchmarkMinPath_Dijkstra(b *testing.B) {
	g := buildBenchGraph(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.MinPath(1, 1000)
	}
}

func BenchmarkMinPathAll_Dijkstra(b *testing.B) {
	g := buildBenchGraph(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = g.MinPathAll(1)
	}
}

func BenchmarkMaxPath_DoubleSweep(b *testing.B) {
	g := buildBenchGraph(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.MaxPath()
	}
}
