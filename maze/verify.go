package maze

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/bfs"
)

// Verify checks that the open passages reachable from seed form a tree and
// that no passage is one-sided.
//
// A connected set of n cells joined by exactly n-1 passages is acyclic, so
// comparing counts over the BFS-reached set suffices.
//
// Errors: ErrGraphNil, ErrSeedOutOfRange, or ErrNotSpanningTree wrapped with
// the failing property. The Report is returned alongside ErrNotSpanningTree.
//
// Complexity: O(V + E).
func Verify(g Reader, seed int) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(seed) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSeedOutOfRange, seed, g.Order())
	}
	res, err := bfs.BFS(g, seed)
	if err != nil {
		return nil, fmt.Errorf("maze: verify from %d: %w", seed, err)
	}

	rep := &Report{Reached: len(res.Order), Symmetric: g.Symmetric()}
	pairs := make(map[[2]int]struct{})
	for _, u := range res.Order {
		for _, w := range g.OpenNeighbors(u) {
			if !res.Reached(w) {
				continue
			}
			if u > w {
				pairs[[2]int{w, u}] = struct{}{}
			} else {
				pairs[[2]int{u, w}] = struct{}{}
			}
		}
	}
	rep.Passages = len(pairs)

	switch {
	case !rep.Symmetric:
		return rep, fmt.Errorf("%w: one-sided passage", ErrNotSpanningTree)
	case rep.Passages != rep.Reached-1:
		return rep, fmt.Errorf("%w: %d passages among %d cells", ErrNotSpanningTree, rep.Passages, rep.Reached)
	}

	return rep, nil
}
