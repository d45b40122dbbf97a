package gridgraph

// Components groups the cells into regions joined by open passages.
// Returns a slice of components; each component lists cell ids in BFS order
// from its smallest id. Components are ordered by their smallest id.
//
// A freshly built grid has side² singleton components; a carved maze has one.
//
// Time:   O(side²·4).
// Memory: O(side²) for seen flags and output.
func (gr *Grid) Components() [][]int {
	total := gr.Side * gr.Side
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range gr.Graph.OpenNeighbors(queue[qi]) {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
