// Package maze carves a perfect maze into a walled grid graph and verifies
// the result.
//
// This file declares options, results and sentinel errors.
package maze

import (
	"context"
	"errors"
	"math/rand"
)

// Sentinel errors for generation and verification.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("maze: graph is nil")

	// ErrSeedOutOfRange is returned when the seed cell is not a vertex of the graph.
	ErrSeedOutOfRange = errors.New("maze: seed cell out of range")

	// ErrNotSpanningTree is returned by Verify when the passages reached from
	// the seed do not form a symmetric tree.
	ErrNotSpanningTree = errors.New("maze: passages do not form a spanning tree")
)

// Options configures Generate.
type Options struct {
	// Ctx is checked once per stack pop.
	Ctx context.Context

	// Seed feeds the default RNG. 0 selects the fixed default seed.
	Seed int64

	// Rand, when non-nil, replaces the RNG derived from Seed.
	// It is used from a single goroutine only.
	Rand *rand.Rand

	// OnCarve is called after each passage is opened.
	OnCarve func(from, to int)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns background context, seed 0 and a no-op OnCarve hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnCarve: func(int, int) {},
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed selects the RNG seed (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects an RNG; it takes precedence over WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithOnCarve registers a hook called after every opened passage.
func WithOnCarve(fn func(from, to int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCarve = fn
		}
	}
}

// Result summarizes one Generate call.
type Result struct {
	// Seed is the cell the carve started from.
	Seed int
	// Visited counts cells reached by the carve.
	Visited int
	// Opened counts passages opened (Visited-1 on success).
	Opened int
}

// Reader is the read side Verify needs. *core.Graph and core.View satisfy it.
type Reader interface {
	Order() int
	HasVertex(id int) bool
	OpenNeighbors(id int) []int
	Symmetric() bool
}

// Report is the outcome of Verify.
type Report struct {
	// Reached counts cells connected to the seed by open passages.
	Reached int
	// Passages counts unordered open pairs among reached cells.
	Passages int
	// Symmetric reports whether every open record has an open reverse.
	Symmetric bool
}
