package core_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/core"
)

// BenchmarkPushEdge_Grid256 measures building the closed records of a 256×256 grid.
// Complexity: O(side²) records, each an amortized O(1) append.
func BenchmarkPushEdge_Grid256(b *testing.B) {
	const side = 256
	for i := 0; i < b.N; i++ {
		g, _ := core.NewGraph(side * side)
		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				id := x + y*side
				if x+1 < side {
					_ = g.PushEdge(id, id+1, core.Closed)
				}
				if y+1 < side {
					_ = g.PushEdge(id, id+side, core.Closed)
				}
			}
		}
	}
}

// BenchmarkOpenNeighbors measures the per-cell query used by both searches.
func BenchmarkOpenNeighbors(b *testing.B) {
	const n = 1024
	g, _ := core.NewGraph(n)
	for i := 0; i+1 < n; i++ {
		_ = g.PushEdge(i, i+1, core.Open)
		_ = g.PushEdge(i+1, i, core.Open)
	}
	v := g.View()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.OpenNeighbors(i % n)
	}
}
