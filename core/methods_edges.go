// File: methods_edges.go
// Role: Edge record lifecycle & queries: PushEdge, Edges, MutableEdges,
//       EdgeState, SetEdgeState, OpenPassage.
// Determinism:
//   - Records keep insertion order until a caller reorders them through MutableEdges.
// Concurrency:
//   - Mutators require exclusive access and fail with ErrFrozen after View().

package core

import "fmt"

// PushEdge appends the record (to, state) to from's adjacency sequence.
// It does not deduplicate: pushing the same pair twice yields two records.
//
// Steps:
//  1. Reject a frozen graph (ErrFrozen).
//  2. Reject out-of-range endpoints (ErrVertexOutOfRange).
//  3. Append to adjacency[from].
//
// Complexity: O(1) amortized.
func (g *Graph) PushEdge(from, to int, state EdgeState) error {
	if err := g.checkMutable(); err != nil {
		return err
	}
	if !g.inRange(from) || !g.inRange(to) {
		return fmt.Errorf("%w: edge %d→%d, order %d", ErrVertexOutOfRange, from, to, g.Order())
	}
	g.adjacency[from] = append(g.adjacency[from], Edge{To: to, State: state})

	return nil
}

// Edges returns a copy of the adjacency sequence of id.
// The boolean is false when id was never a PushEdge source (or is out of range).
//
// Complexity: O(deg(id)).
func (g *Graph) Edges(id int) ([]Edge, bool) {
	if !g.inRange(id) || g.adjacency[id] == nil {
		return nil, false
	}
	out := make([]Edge, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, true
}

// MutableEdges returns the backing adjacency sequence of id. Reordering the
// slice or assigning Edge.State through it mutates the graph in place.
// It returns (nil, nil) when id was never a source.
//
// Complexity: O(1).
func (g *Graph) MutableEdges(id int) ([]Edge, error) {
	if err := g.checkMutable(); err != nil {
		return nil, err
	}
	if !g.inRange(id) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, id)
	}

	return g.adjacency[id], nil
}

// EdgeState returns the state of the first from→to record.
// The boolean is false when no such record exists.
//
// Complexity: O(deg(from)).
func (g *Graph) EdgeState(from, to int) (EdgeState, bool) {
	if !g.inRange(from) {
		return Closed, false
	}
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return e.State, true
		}
	}

	return Closed, false
}

// SetEdgeState assigns state to every from→to record.
// Returns ErrEdgeNotFound when there is none.
//
// Complexity: O(deg(from)).
func (g *Graph) SetEdgeState(from, to int, state EdgeState) error {
	if err := g.checkMutable(); err != nil {
		return err
	}
	if !g.inRange(from) {
		return fmt.Errorf("%w: %d", ErrVertexOutOfRange, from)
	}
	found := false
	for i := range g.adjacency[from] {
		if g.adjacency[from][i].To == to {
			g.adjacency[from][i].State = state
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}

	return nil
}

// OpenPassage opens the wall between u and v in both directions in one call:
// the u→v records must exist, the v→u records are opened when present.
// A graph carved only through OpenPassage never holds a one-sided passage.
//
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) OpenPassage(u, v int) error {
	if err := g.SetEdgeState(u, v, Open); err != nil {
		return err
	}
	// Reverse records are optional: hand-built graphs may link one way only.
	for i := range g.adjacency[v] {
		if g.adjacency[v][i].To == u {
			g.adjacency[v][i].State = Open
		}
	}

	return nil
}
