// File: methods_adjacent.go
// Role: Open-passage queries used by the generator, the searches and the renderer:
//       IsOpen, OpenNeighbors, PassageCount, Symmetric.
// Determinism:
//   - OpenNeighbors follows record order; duplicates are reported once.

package core

// IsOpen reports whether any u→v record is Open.
// Complexity: O(deg(u)).
func (g *Graph) IsOpen(u, v int) bool {
	if !g.inRange(u) {
		return false
	}
	for _, e := range g.adjacency[u] {
		if e.To == v && e.State == Open {
			return true
		}
	}

	return false
}

// OpenNeighbors returns the distinct targets of id's Open records, in record order.
// Complexity: O(deg(id)²) worst case; deg is at most 4 on a grid.
func (g *Graph) OpenNeighbors(id int) []int {
	if !g.inRange(id) {
		return nil
	}
	var out []int
	for _, e := range g.adjacency[id] {
		if e.State != Open || containsInt(out, e.To) {
			continue
		}
		out = append(out, e.To)
	}

	return out
}

// PassageCount returns the number of unordered pairs {u,v} joined by at least
// one Open record in either direction. On a carved side×side maze it is side²-1.
//
// Complexity: O(V + E).
func (g *Graph) PassageCount() int {
	seen := make(map[[2]int]struct{})
	for u, recs := range g.adjacency {
		for _, e := range recs {
			if e.State != Open {
				continue
			}
			seen[pairKey(u, e.To)] = struct{}{}
		}
	}

	return len(seen)
}

// Symmetric reports whether every Open record u→v has an Open v→u record.
// Complexity: O(V·d²).
func (g *Graph) Symmetric() bool {
	for u, recs := range g.adjacency {
		for _, e := range recs {
			if e.State == Open && !g.IsOpen(e.To, u) {
				return false
			}
		}
	}

	return true
}

// pairKey orders an unordered pair.
func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}

// containsInt is a linear membership check for tiny slices.
func containsInt(s []int, x int) bool {
	for _, v := range s {
		if v == x {
			return true
		}
	}

	return false
}
