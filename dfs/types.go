// Package dfs defines types and options for the depth-first path finder:
// events, results, pacing delays, channel capacity and cancellation.
package dfs

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to FindPath or Stream.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start cell does not exist in the graph.
	ErrStartNotFound = errors.New("dfs: start vertex not found")

	// ErrEndNotFound indicates that the end cell does not exist in the graph.
	ErrEndNotFound = errors.New("dfs: end vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// DefaultBuffer is the Stream channel capacity unless WithBuffer overrides it.
const DefaultBuffer = 256

// Graph is the read side the path finder needs.
// Both *core.Graph and core.View satisfy it.
type Graph interface {
	HasVertex(id int) bool
	OpenNeighbors(id int) []int
}

// EventKind tells how a cell took part in the search.
type EventKind uint8

const (
	// KindExplored: the cell was visited by the search.
	KindExplored EventKind = iota
	// KindPath: the cell lies on the final start→end path.
	KindPath
	// KindUnreachable: terminal event, the end cell was not found. Cell is the end cell.
	KindUnreachable
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case KindExplored:
		return "explored"
	case KindPath:
		return "path"
	case KindUnreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is one step of the search as seen by a renderer.
type Event struct {
	Cell int
	Kind EventKind
}

// IsFinalPath reports whether the event marks a cell of the final path.
func (e Event) IsFinalPath() bool { return e.Kind == KindPath }

// Result is the outcome of FindPath.
type Result struct {
	// Explored lists cells in visit order; it starts with the start cell.
	Explored []int
	// Path runs from start to end; nil when Found is false.
	Path []int
	// Found reports whether end was reached.
	Found bool
	// Events is the full event sequence Stream would have delivered.
	Events []Event
}

// Option configures the path finder.
type Option func(*Options)

// Options holds pacing, buffering and cancellation settings.
type Options struct {
	// Ctx cancels the walk; a cancelled Stream closes its channel.
	Ctx context.Context

	// StepDelay pauses after every explored cell.
	StepDelay time.Duration

	// SettleDelay pauses once between the search and the path replay.
	SettleDelay time.Duration

	// PathDelay pauses after every path cell.
	PathDelay time.Duration

	// Buffer is the Stream channel capacity.
	Buffer int

	// OnEvent, if non-nil, sees every event before it is delivered.
	OnEvent func(Event)

	err error
}

// DefaultOptions returns background context, no delays and DefaultBuffer.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Buffer: DefaultBuffer,
	}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStepDelay paces explored cells.
func WithStepDelay(d time.Duration) Option {
	return func(o *Options) {
		o.StepDelay = d
		o.check("step delay", d)
	}
}

// WithSettleDelay sets the pause before the path replay.
func WithSettleDelay(d time.Duration) Option {
	return func(o *Options) {
		o.SettleDelay = d
		o.check("settle delay", d)
	}
}

// WithPathDelay paces path cells.
func WithPathDelay(d time.Duration) Option {
	return func(o *Options) {
		o.PathDelay = d
		o.check("path delay", d)
	}
}

// WithBuffer sets the Stream channel capacity; 0 makes it unbuffered.
func WithBuffer(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: buffer cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Buffer = n
	}
}

// WithOnEvent installs a hook called for every event.
func WithOnEvent(fn func(Event)) Option {
	return func(o *Options) { o.OnEvent = fn }
}

func (o *Options) check(name string, d time.Duration) {
	if d < 0 {
		o.err = fmt.Errorf("%w: %s cannot be negative (%s)", ErrOptionViolation, name, d)
	}
}
