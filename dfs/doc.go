// Package dfs finds a path through a maze by iterative depth-first search and
// reports the walk as a sequence of events for animation.
//
// Key features:
//
//   - FindPath(g, start, end, opts...): run to completion, return Result.
//   - Stream(g, start, end, opts...): same walk on its own goroutine, events
//     delivered on a bounded channel that closes when the walk ends.
//   - Only open passages are followed (Graph.OpenNeighbors).
//   - Pacing: StepDelay per explored cell, SettleDelay before the path replay,
//     PathDelay per path cell.
//   - Cancellation via context.Context; a cancelled Stream stops sending.
//
// Event order:
//
//	Explored(start) … Explored(end) Path(start) … Path(end)
//	Explored(start) … Explored(last) Unreachable(end)
//
// Complexity:
//
//   - Time:   O(V + E) plus the configured delays.
//   - Memory: O(V) for the stack, the visited set and the path.
//
// Options:
//
//   - WithContext(ctx)       cancellation.
//   - WithStepDelay(d)       pause after each explored cell (d ≥ 0).
//   - WithSettleDelay(d)     pause before the path replay (d ≥ 0).
//   - WithPathDelay(d)       pause after each path cell (d ≥ 0).
//   - WithBuffer(n)          Stream channel capacity (n ≥ 0, default 256).
//   - WithOnEvent(fn)        observe every event.
//
// Errors:
//
//   - ErrGraphNil          if g is nil.
//   - ErrStartNotFound     if start is not a vertex.
//   - ErrEndNotFound       if end is not a vertex.
//   - ErrOptionViolation   for negative delays or buffer.
//   - context.Canceled     from FindPath if ctx is done.
package dfs
