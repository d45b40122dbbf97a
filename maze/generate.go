// File: generate.go
// Role: Randomized iterative backtracker carving a perfect maze.
// Determinism:
//   - Same graph, seed cell and RNG stream ⇒ identical passages and record order.
// Concurrency:
//   - Mutates g; callers hold exclusive access until they call g.View().

package maze

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

// Generate carves passages into g starting from the seed cell.
//
// Steps:
//  1. Mark seed visited and push it.
//  2. Pop current; shuffle its records in place.
//  3. For the first record whose target is unvisited: push current back,
//     open the passage in both directions, mark the target and push it.
//     Otherwise drop current.
//  4. Repeat until the stack is empty.
//
// Every cell reachable through records from seed ends up visited, and the
// opened passages form a spanning tree of those cells. Cells unreachable
// through records stay unvisited and walled.
//
// Errors: ErrGraphNil, ErrSeedOutOfRange, core.ErrFrozen (wrapped),
// ctx.Err() on cancellation (passages opened so far stay open).
//
// Complexity: O(V + E) time, O(V) memory.
func Generate(g *core.Graph, seed int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(seed) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSeedOutOfRange, seed, g.Order())
	}
	if g.Frozen() {
		return nil, fmt.Errorf("maze: seed %d: %w", seed, core.ErrFrozen)
	}
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	visited := make([]bool, g.Order())
	res := &Result{Seed: seed, Visited: 1}
	visited[seed] = true
	stack := []int{seed}

	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		recs, err := g.MutableEdges(current)
		if err != nil {
			return res, fmt.Errorf("maze: cell %d: %w", current, err)
		}
		shuffleEdges(rng, recs)

		for _, e := range recs {
			if visited[e.To] {
				continue
			}
			stack = append(stack, current)
			if err = g.OpenPassage(current, e.To); err != nil {
				return res, fmt.Errorf("maze: open %d→%d: %w", current, e.To, err)
			}
			visited[e.To] = true
			res.Visited++
			res.Opened++
			o.OnCarve(current, e.To)
			stack = append(stack, e.To)
			break
		}
	}

	return res, nil
}
