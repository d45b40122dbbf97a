// Package bfs provides breadth-first search over the open passages of a
// maze graph, returning shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing distance (passage count) from a start cell.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: cell → distance from start
//   - Parent: cell → predecessor in the BFS tree
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - WithFilterNeighbor prunes individual passages.
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Shortest start→end distance for the stats logged after generation.
//   - Reached-set computation for maze verification.
//
// Determinism
//
//	Neighbors come from Graph.OpenNeighbors in record order, so the visit
//	sequence is reproducible for a given graph.
//
// Complexity (V = cells, E = records)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(view, start, bfs.WithContext(ctx))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ctx.Err() or a hook error
//	}
//	path, err := res.PathTo(end) // ErrNoPath when end was not reached
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start cell does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo for an unreached cell.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
