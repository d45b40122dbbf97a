package maze_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/maze"
)

// BenchmarkGenerate carves a 256×256 maze per iteration, grid construction excluded.
func BenchmarkGenerate(b *testing.B) {
	const side = 256
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		gr, err := gridgraph.NewMaze(side)
		if err != nil {
			b.Fatalf("NewMaze failed: %v", err)
		}
		b.StartTimer()
		if _, err = maze.Generate(gr.Graph, 0, maze.WithSeed(int64(i+1))); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkVerify checks a carved 256×256 maze.
func BenchmarkVerify(b *testing.B) {
	gr, err := gridgraph.NewMaze(256)
	if err != nil {
		b.Fatalf("NewMaze failed: %v", err)
	}
	if _, err = maze.Generate(gr.Graph, 0); err != nil {
		b.Fatalf("Generate failed: %v", err)
	}
	v := gr.Graph.View()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = maze.Verify(v, 0)
	}
}
