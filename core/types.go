// Package core defines the central Graph, Edge, EdgeState and Label types
// of a maze: a directed adjacency structure over dense integer cell ids.
//
// This file declares the value types, sentinel errors and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyGraph        - graph order is smaller than one.
//	ErrVertexOutOfRange  - id lies outside [0, Order()).
//	ErrEdgeNotFound      - no from→to record exists.
//	ErrFrozen            - mutation attempted after View() froze the graph.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyGraph indicates a graph of order < 1 was requested.
	ErrEmptyGraph = errors.New("core: graph order must be at least 1")

	// ErrVertexOutOfRange indicates an id outside the dense range [0, Order()).
	ErrVertexOutOfRange = errors.New("core: vertex id out of range")

	// ErrEdgeNotFound indicates an operation referenced a missing from→to record.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrFrozen indicates a mutation on a graph already handed out as a View.
	ErrFrozen = errors.New("core: graph is frozen")
)

// EdgeState tells whether a wall stands between two cells.
type EdgeState uint8

const (
	// Closed means a wall is present; the zero value.
	Closed EdgeState = iota
	// Open means the two cells are joined by a passage.
	Open
)

// String implements fmt.Stringer.
func (s EdgeState) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	default:
		return fmt.Sprintf("EdgeState(%d)", uint8(s))
	}
}

// Label is a small semantic tag on a vertex. Neither generation nor
// path finding depends on it; the shell uses it to mark the endpoints.
type Label uint8

const (
	// LabelNone is the default label.
	LabelNone Label = iota
	// LabelStart marks the cell the path search starts from.
	LabelStart
	// LabelEnd marks the cell the path search is looking for.
	LabelEnd
)

// String implements fmt.Stringer.
func (l Label) String() string {
	switch l {
	case LabelNone:
		return "none"
	case LabelStart:
		return "start"
	case LabelEnd:
		return "end"
	default:
		return fmt.Sprintf("Label(%d)", uint8(l))
	}
}

// Edge is one directed adjacency record: the target cell and the state
// of the wall between the owner cell and To.
type Edge struct {
	// To is the destination cell id.
	To int

	// State is Open for a passage, Closed for a wall.
	State EdgeState
}

// Graph is a directed adjacency structure keyed by dense cell ids in [0, Order()).
//
// Records are stored one direction at a time: PushEdge(a, b) does not create
// b→a. A square grid therefore holds two independent records per neighbor pair.
//
// Storage is a contiguous arena indexed by id:
//
//	labels[id]    vertex label (meaningful only when present[id])
//	present[id]   PushVertex was called for id
//	adjacency[id] ordered records pushed from id (nil if id was never a source)
//
// A Graph is not safe for concurrent mutation. Call View to freeze it and
// obtain a read-only handle that may be shared across goroutines.
type Graph struct {
	labels    []Label
	present   []bool
	adjacency [][]Edge
	frozen    bool
}

// NewGraph returns an empty Graph able to hold order vertices.
// Returns ErrEmptyGraph when order < 1.
//
// Complexity: O(order).
func NewGraph(order int) (*Graph, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrEmptyGraph, order)
	}

	return &Graph{
		labels:    make([]Label, order),
		present:   make([]bool, order),
		adjacency: make([][]Edge, order),
	}, nil
}

// Order returns the size of the id space, i.e. the exclusive upper bound of valid ids.
func (g *Graph) Order() int { return len(g.labels) }

// Frozen reports whether View has been called on g.
func (g *Graph) Frozen() bool { return g.frozen }

// inRange reports whether id indexes the arena.
func (g *Graph) inRange(id int) bool { return id >= 0 && id < len(g.labels) }

// checkMutable guards every mutator.
func (g *Graph) checkMutable() error {
	if g.frozen {
		return ErrFrozen
	}

	return nil
}
