package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

// ExampleGraph_OpenPassage builds a 3-cell corridor 0–1–2 with walls everywhere,
// opens the wall between 0 and 1, and inspects both directions.
//
//	[0]|[1]|[2]   →   [0] [1]|[2]
func ExampleGraph_OpenPassage() {
	g, _ := core.NewGraph(3)
	for id := 0; id < 3; id++ {
		_ = g.PushVertex(id, core.LabelNone)
	}
	// Each direction is its own record.
	_ = g.PushEdge(0, 1, core.Closed)
	_ = g.PushEdge(1, 0, core.Closed)
	_ = g.PushEdge(1, 2, core.Closed)
	_ = g.PushEdge(2, 1, core.Closed)

	_ = g.OpenPassage(0, 1)

	fmt.Println("0→1:", g.IsOpen(0, 1))
	fmt.Println("1→0:", g.IsOpen(1, 0))
	fmt.Println("1→2:", g.IsOpen(1, 2))
	fmt.Println("passages:", g.PassageCount())
	// Output:
	// 0→1: true
	// 1→0: true
	// 1→2: false
	// passages: 1
}

// ExampleGraph_View freezes a graph before sharing it.
func ExampleGraph_View() {
	g, _ := core.NewGraph(2)
	_ = g.PushEdge(0, 1, core.Open)

	v := g.View()
	fmt.Println(v.OpenNeighbors(0))
	fmt.Println(g.PushEdge(1, 0, core.Open))
	// Output:
	// [1]
	// core: graph is frozen
}
