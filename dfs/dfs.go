// Package dfs finds a path between two cells of a maze by depth-first search
// and reports every step as an Event, synchronously (FindPath) or on a
// channel (Stream).
package dfs

import (
	"context"
	"fmt"
	"time"
)

// frame is a pending cell and the depth it was discovered at.
type frame struct {
	cell  int
	depth int
}

// walker encapsulates the search state shared by FindPath and Stream.
type walker struct {
	graph   Graph
	opts    Options
	ctx     context.Context
	end     int
	stack   []frame
	visited map[int]bool
	path    []int
	res     *Result
	emit    func(Event) error
}

// FindPath runs the search to completion and returns every event it produced.
// Delays are honored, so callers normally leave them at zero here.
//
// On cancellation the partial Result is returned with ctx.Err().
func FindPath(g Graph, start, end int, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return nil, err
	}
	w.emit = func(ev Event) error {
		if w.opts.OnEvent != nil {
			w.opts.OnEvent(ev)
		}
		w.res.Events = append(w.res.Events, ev)
		return nil
	}
	if err = w.run(start); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// Stream validates its input synchronously, then searches on its own
// goroutine and delivers events on the returned channel in order.
// The channel is closed when the search ends or ctx is cancelled.
// A full buffer blocks the search until the consumer catches up.
func Stream(g Graph, start, end int, opts ...Option) (<-chan Event, error) {
	w, err := newWalker(g, start, end, opts)
	if err != nil {
		return nil, err
	}
	ch := make(chan Event, w.opts.Buffer)
	w.emit = func(ev Event) error {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		if w.opts.OnEvent != nil {
			w.opts.OnEvent(ev)
		}
		select {
		case ch <- ev:
			return nil
		case <-w.ctx.Done():
			return w.ctx.Err()
		}
	}
	go func() {
		defer close(ch)
		_ = w.run(start)
	}()

	return ch, nil
}

// newWalker applies options and validates the graph and both endpoints.
func newWalker(g Graph, start, end int, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}
	if !g.HasVertex(end) {
		return nil, fmt.Errorf("%w: %d", ErrEndNotFound, end)
	}

	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		end:     end,
		visited: make(map[int]bool),
		res:     &Result{},
	}, nil
}

// run performs the search and the path replay.
//
// Steps:
//  1. Seed the stack with (start, 0).
//  2. Pop (cell, depth); skip visited cells; mark; cut the path back to
//     depth and push cell; emit Explored; pause StepDelay; stop at end.
//  3. Push every open, unvisited neighbor at depth+1.
//  4. Found: pause SettleDelay, emit Path per path cell with PathDelay.
//     Otherwise emit one Unreachable(end).
//
// A cell discovered at depth d has its parent at path[d-1] whenever it is
// popped, so the cut never drops an ancestor.
//
// Complexity: O(V + E).
func (w *walker) run(start int) error {
	w.stack = append(w.stack, frame{cell: start})
	found := false

	for len(w.stack) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		f := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.visited[f.cell] {
			continue
		}
		w.visited[f.cell] = true
		w.path = append(w.path[:f.depth], f.cell)
		w.res.Explored = append(w.res.Explored, f.cell)

		if err := w.emit(Event{Cell: f.cell, Kind: KindExplored}); err != nil {
			return err
		}
		if err := w.pause(w.opts.StepDelay); err != nil {
			return err
		}
		if f.cell == w.end {
			found = true
			break
		}

		for _, nb := range w.graph.OpenNeighbors(f.cell) {
			if !w.visited[nb] {
				w.stack = append(w.stack, frame{cell: nb, depth: f.depth + 1})
			}
		}
	}

	if !found {
		return w.emit(Event{Cell: w.end, Kind: KindUnreachable})
	}

	w.res.Found = true
	w.res.Path = append([]int(nil), w.path...)
	if err := w.pause(w.opts.SettleDelay); err != nil {
		return err
	}
	for _, c := range w.res.Path {
		if err := w.emit(Event{Cell: c, Kind: KindPath}); err != nil {
			return err
		}
		if err := w.pause(w.opts.PathDelay); err != nil {
			return err
		}
	}

	return nil
}

// pause sleeps for d unless ctx ends first.
func (w *walker) pause(d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	case <-t.C:
		return nil
	}
}
