package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/crucible/dijkstra"
)

// BenchmarkCrucible measures a bounded-run search on a 141×141 random map.
func BenchmarkCrucible(b *testing.B) {
	benchmarkPolicy(b, dijkstra.Crucible())
}

// BenchmarkUltraCrucible measures a minimum-commit search on a 141×141 random map.
func BenchmarkUltraCrucible(b *testing.B) {
	benchmarkPolicy(b, dijkstra.UltraCrucible())
}

func benchmarkPolicy(b *testing.B, p dijkstra.Policy) {
	g := randomGrid(b, 42, 141, 141)
	start := dijkstra.Start(g.Origin())
	goal := dijkstra.Arrive(p, g.Corner())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestCost(g, start, goal, p); err != nil {
			b.Fatal(err)
		}
	}
}
