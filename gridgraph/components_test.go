// File: gridgraph/components_test.go
package gridgraph

import (
	"sort"
	"testing"
)

// TestComponents_Walled: a fresh 3×3 grid has nine singleton components.
func TestComponents_Walled(t *testing.T) {
	gr, err := NewMaze(3)
	if err != nil {
		t.Fatalf("NewMaze failed: %v", err)
	}
	comps := gr.Components()
	if len(comps) != 9 {
		t.Fatalf("got %d components; want 9", len(comps))
	}
	for i, c := range comps {
		if len(c) != 1 || c[0] != i {
			t.Errorf("component %d = %v; want [%d]", i, c, i)
		}
	}
}

// TestComponents_TwoRooms opens passages to form two regions on a 2×2 grid:
//
//	0 ─ 1
//	2 ─ 3
//
// Expected: components {0,1} and {2,3}.
func TestComponents_TwoRooms(t *testing.T) {
	gr, err := NewMaze(2)
	if err != nil {
		t.Fatalf("NewMaze failed: %v", err)
	}
	if err = gr.Graph.OpenPassage(0, 1); err != nil {
		t.Fatal(err)
	}
	if err = gr.Graph.OpenPassage(2, 3); err != nil {
		t.Fatal(err)
	}

	comps := gr.Components()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	for _, c := range comps {
		sort.Ints(c)
	}
	if comps[0][0] != 0 || comps[0][1] != 1 || comps[1][0] != 2 || comps[1][1] != 3 {
		t.Errorf("components = %v; want [[0 1] [2 3]]", comps)
	}
}

// TestComponents_Single checks the trivial 1×1 grid.
func TestComponents_Single(t *testing.T) {
	gr, _ := NewMaze(1)
	comps := gr.Components()
	if len(comps) != 1 || len(comps[0]) != 1 {
		t.Errorf("components = %v; want [[0]]", comps)
	}
}
