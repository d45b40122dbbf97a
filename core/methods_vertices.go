// File: methods_vertices.go
// Role: Vertex lifecycle & queries: PushVertex, HasVertex, Label, VertexCount.
// Determinism:
//   - Ids are dense; enumeration is always ascending by id.
// Concurrency:
//   - Mutators require exclusive access and fail with ErrFrozen after View().

package core

import "fmt"

// PushVertex inserts or overwrites the label of vertex id.
//
// Steps:
//  1. Reject a frozen graph (ErrFrozen).
//  2. Reject ids outside [0, Order()) (ErrVertexOutOfRange).
//  3. Store the label and mark the vertex present.
//
// Complexity: O(1).
func (g *Graph) PushVertex(id int, label Label) error {
	if err := g.checkMutable(); err != nil {
		return err
	}
	if !g.inRange(id) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, id, g.Order())
	}
	g.labels[id] = label
	g.present[id] = true

	return nil
}

// HasVertex reports whether PushVertex was called for id.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	return g.inRange(id) && g.present[id]
}

// Label returns the label of id and whether the vertex is present.
// Complexity: O(1).
func (g *Graph) Label(id int) (Label, bool) {
	if !g.HasVertex(id) {
		return LabelNone, false
	}

	return g.labels[id], true
}

// VertexCount returns the number of present vertices.
// Complexity: O(V).
func (g *Graph) VertexCount() int {
	n := 0
	for _, p := range g.present {
		if p {
			n++
		}
	}

	return n
}
