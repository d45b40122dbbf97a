// Package gridgraph turns a square side×side grid into a maze graph and back.
//
// What:
//
//   - NewMaze(side) builds a *core.Graph with one vertex per cell and one Closed
//     record per in-bounds 4-neighbor, pushed from each endpoint independently.
//   - CellID / Coordinate convert between row-major ids and (x,y).
//   - Components groups cells joined by open passages.
//
// Why:
//
//   - Maze generation starts from the fully walled grid.
//   - Renderers need (x,y) for every id the searches emit.
//   - Components is the quick check that a carve reached every cell.
//
// Complexity:
//
//   - NewMaze:    O(side²), Memory: O(side²).
//   - Components: O(side²·4), Memory: O(side²).
//
// Errors:
//
//   - ErrEmptyGrid: side < 1.
//   - ErrCellOutOfRange: a cell id outside [0, side²).
package gridgraph
