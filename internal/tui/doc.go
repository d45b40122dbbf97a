// Package tui renders a maze and the depth-first search over it with tcell.
//
// Walls, cells and passages are drawn on a block grid (see Layout). The Loop
// polls keys on its own goroutine, starts the search on Space and drains
// search events without blocking once per frame.
package tui
