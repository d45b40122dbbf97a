// File: view.go
// Role: Read-only shared handle over a frozen graph.
// Concurrency:
//   - View() freezes the graph; afterwards every mutator returns ErrFrozen,
//     so any number of goroutines may read through the View without locks.

package core

// View is a read-only handle on a frozen Graph. The zero View is not usable;
// obtain one from (*Graph).View.
type View struct {
	g *Graph
}

// View freezes g and returns a read-only handle on it. Freezing is permanent;
// use Clone to get a mutable copy.
//
// Complexity: O(1).
func (g *Graph) View() View {
	g.frozen = true

	return View{g: g}
}

// Order returns the size of the id space.
func (v View) Order() int { return v.g.Order() }

// HasVertex reports whether id is a present vertex.
func (v View) HasVertex(id int) bool { return v.g.HasVertex(id) }

// Label returns the label of id and whether the vertex is present.
func (v View) Label(id int) (Label, bool) { return v.g.Label(id) }

// Edges returns a copy of id's adjacency sequence.
func (v View) Edges(id int) ([]Edge, bool) { return v.g.Edges(id) }

// IsOpen reports whether any u→v record is Open.
func (v View) IsOpen(u, w int) bool { return v.g.IsOpen(u, w) }

// OpenNeighbors returns the distinct targets of id's Open records.
func (v View) OpenNeighbors(id int) []int { return v.g.OpenNeighbors(id) }

// PassageCount returns the number of open unordered pairs.
func (v View) PassageCount() int { return v.g.PassageCount() }

// Symmetric reports whether every open record has an open reverse.
func (v View) Symmetric() bool { return v.g.Symmetric() }
