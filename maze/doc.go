// Package maze carves perfect mazes into grid graphs built by gridgraph.
//
// What:
//
//   - Generate runs a randomized iterative backtracker from a seed cell:
//     shuffle the current cell's records, open the first wall leading to an
//     unvisited cell, push, repeat; backtrack when no such wall is left.
//   - Passages are opened in both directions at once (core.Graph.OpenPassage),
//     so the carved graph is symmetric without a repair pass.
//   - Verify re-checks a graph: reached cells, passage count, symmetry.
//
// Randomness:
//
//	The RNG is injected: WithRand(r) or WithSeed(s). Seed 0 maps to a fixed
//	default, so Generate without options is deterministic. Callers wanting a
//	fresh maze per run pass a time-derived seed themselves.
//
// Complexity:
//
//   - Generate: O(V + E) time, O(V) memory.
//   - Verify:   O(V + E) time, O(V) memory.
//
// Errors:
//
//   - ErrGraphNil:        nil graph.
//   - ErrSeedOutOfRange:  seed cell is not a vertex.
//   - core.ErrFrozen:     graph already handed out as a View.
//   - ErrNotSpanningTree: Verify found a cycle, a gap or a one-sided passage.
package maze
