// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvmaze.
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/lvmaze/core"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a side length smaller than one.
	ErrEmptyGrid = errors.New("gridgraph: side must be at least 1")

	// ErrCellOutOfRange indicates a cell id outside [0, side²).
	ErrCellOutOfRange = errors.New("gridgraph: cell id out of range")
)

// Direction is one of the four cardinal moves.
type Direction int

const (
	// West is x-1.
	West Direction = iota
	// East is x+1.
	East
	// North is y-1.
	North
	// South is y+1.
	South
)

// offsets in Direction order. NewMaze pushes records in this order.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Offset returns the (dx, dy) step of d.
func (d Direction) Offset() (dx, dy int) {
	return offsets[d][0], offsets[d][1]
}

// Grid pairs a square side length with the graph over its side² cells.
// Cell ids are row-major: id = x + y*Side.
type Grid struct {
	Side  int
	Graph *core.Graph
}
