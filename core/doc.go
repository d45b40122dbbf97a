// Package core provides the maze graph: a directed adjacency structure over
// dense integer cell ids with a per-record wall state and a per-vertex label.
//
// The Graph G = (V,E) is stored as an arena indexed by id:
//
//   - Vertices are the ids in [0, Order()) for which PushVertex was called.
//   - Each vertex owns an ordered sequence of Edge{To, State} records.
//   - Records are directional: PushEdge(a,b) never creates b→a.
//   - State is Closed (wall) or Open (passage).
//
// Why dense ids?
//
//   - Grid cells are already numbered x + y*side, a perfect [0, n) range, so
//     direct indexing replaces hashing and keeps iteration ascending by id.
//
// Core Methods:
//
//	// Vertex lifecycle
//	PushVertex(id int, label Label) error   // O(1)
//	HasVertex(id int) bool                  // O(1)
//	Label(id int) (Label, bool)             // O(1)
//
//	// Edge records
//	PushEdge(from, to int, s EdgeState) error        // O(1) amortized, no dedup
//	Edges(id int) ([]Edge, bool)                     // O(d), copy
//	MutableEdges(id int) ([]Edge, error)             // O(1), backing slice
//	EdgeState(from, to int) (EdgeState, bool)        // O(d)
//	SetEdgeState(from, to int, s EdgeState) error    // O(d)
//	OpenPassage(u, v int) error                      // O(d), both directions
//
//	// Open-passage queries
//	IsOpen(u, v int) bool       // O(d)
//	OpenNeighbors(id int) []int // O(d²)
//	PassageCount() int          // O(V+E)
//	Symmetric() bool            // O(V·d²)
//
//	// Ownership
//	Clone() *Graph              // O(V+E), deep copy, never frozen
//	View() View                 // O(1), freezes the graph
//
// Lifecycle:
//
//	NewGraph → PushVertex/PushEdge (builder) → MutableEdges/OpenPassage (generator)
//	→ View (hand-off to concurrent readers).
//
// Errors:
//
//	ErrEmptyGraph        – order < 1
//	ErrVertexOutOfRange  – id outside [0, Order())
//	ErrEdgeNotFound      – no from→to record
//	ErrFrozen            – mutation after View()
package core
