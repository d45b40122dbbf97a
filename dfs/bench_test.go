package dfs_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/dfs"
)

// BenchmarkFindPath_Maze searches corner to corner in a 128×128 perfect maze.
func BenchmarkFindPath_Maze(b *testing.B) {
	const side = 128
	v := carved(b, side, 1).Graph.View()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.FindPath(v, 0, side*side-1)
	}
}

// BenchmarkStream_Maze drains the event channel for the same search.
func BenchmarkStream_Maze(b *testing.B) {
	const side = 128
	v := carved(b, side, 1).Graph.View()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ch, _ := dfs.Stream(v, 0, side*side-1)
		for range ch {
		}
	}
}
