// Package lvmaze carves random perfect mazes on a square grid and solves
// them with a paced depth-first search you can watch in the terminal.
//
// What is inside?
//
//	core/       Graph with directed passage records (Closed/Open), labels,
//	            freezing and a read-only View
//	gridgraph/  side×side grid ↔ graph: NewMaze, CellID, Coordinate, Components
//	maze/       randomized backtracker (Generate) and spanning-tree check (Verify)
//	bfs/        breadth-first reachability and shortest paths over open passages
//	dfs/        the paced path finder: FindPath (batch) and Stream (events)
//	cmd/lvmaze/ the terminal program (tcell screen, optional beep tones)
//
// Quick ASCII example (a carved 3×3 maze, S=start, E=end):
//
//	S───1   2
//	    │   │
//	3───4───5
//	│
//	6───7───E
//
// Every cell is reachable and there is exactly one simple path between any
// two cells, so the path finder always returns the shortest route.
//
//	go run github.com/katalvlaran/lvmaze/cmd/lvmaze -side 20 -sound
package lvmaze
