// File: methods_clone.go
// Role: Deep copies of a graph.
// Determinism:
//   - Record order is preserved exactly.
// Concurrency:
//   - Reads only; the clone is never frozen, even when the source is.

package core

// Clone returns a deep copy of g: labels, presence flags and every adjacency record.
// The clone is mutable regardless of whether g is frozen.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	n := g.Order()
	clone := &Graph{
		labels:    make([]Label, n),
		present:   make([]bool, n),
		adjacency: make([][]Edge, n),
	}
	copy(clone.labels, g.labels)
	copy(clone.present, g.present)
	for id, recs := range g.adjacency {
		if recs == nil {
			continue
		}
		clone.adjacency[id] = make([]Edge, len(recs))
		copy(clone.adjacency[id], recs)
	}

	return clone
}
