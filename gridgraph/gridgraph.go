// Package gridgraph treats a square grid of cells as a maze graph.
// Cells are numbered row-major (id = x + y*side); every in-bounds
// 4-neighbor pair is linked by two independent, initially closed records.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

// NewMaze builds the full side×side grid graph with every wall standing.
//
// For each (x,y) in row-major order it pushes the vertex with LabelNone, then
// one Closed record per in-bounds neighbor in West, East, North, South order.
// The reverse record of each pair is pushed later by the neighbor's own loop.
//
// Returns ErrEmptyGrid when side < 1.
// Complexity: O(side²) time and memory.
func NewMaze(side int) (*Grid, error) {
	if side < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrEmptyGrid, side)
	}
	g, err := core.NewGraph(side * side)
	if err != nil {
		return nil, err
	}
	gr := &Grid{Side: side, Graph: g}

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			id := gr.CellID(x, y)
			if err = g.PushVertex(id, core.LabelNone); err != nil {
				return nil, err
			}
			for d := West; d <= South; d++ {
				dx, dy := d.Offset()
				nx, ny := x+dx, y+dy
				if !gr.InBounds(nx, ny) {
					continue
				}
				if err = g.PushEdge(id, gr.CellID(nx, ny), core.Closed); err != nil {
					return nil, err
				}
			}
		}
	}

	return gr, nil
}

// CellID maps (x,y) to its row-major id for a grid of the given side.
// Complexity: O(1).
func CellID(side, x, y int) int {
	return x + y*side
}

// CellID maps (x,y) to its row-major id.
func (gr *Grid) CellID(x, y int) int {
	return CellID(gr.Side, x, y)
}

// Coordinate converts a row-major id back to (x,y).
// Complexity: O(1).
func (gr *Grid) Coordinate(id int) (x, y int) {
	return id % gr.Side, id / gr.Side
}

// InBounds reports whether (x,y) lies within the grid.
func (gr *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < gr.Side && y >= 0 && y < gr.Side
}

// Contains reports whether id is a cell of the grid.
func (gr *Grid) Contains(id int) bool {
	return id >= 0 && id < gr.Side*gr.Side
}

// CheckCell returns ErrCellOutOfRange unless id is a cell of the grid.
func (gr *Grid) CheckCell(id int) error {
	if !gr.Contains(id) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrCellOutOfRange, id, gr.Side*gr.Side)
	}

	return nil
}
