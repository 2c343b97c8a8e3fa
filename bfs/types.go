// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/tsplib/graph"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Unreached marks a vertex BFS never visited in Result.Depth and Result.Parent.
const Unreached = -1

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Walk.
type Option func(*Options)

// Options holds the parameters of one search.
type Options struct {
	// Ctx allows cancellation between dequeues.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// Reverse follows arcs to→from instead of from→to.
	Reverse bool

	// OnVisit is called for every dequeued vertex; an error aborts the walk.
	OnVisit func(v graph.Vertex, depth int) error

	err error
}

// DefaultOptions returns forward, unbounded search with a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(graph.Vertex, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at depth d (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithReverse walks arcs backwards.
func WithReverse() Option {
	return func(o *Options) { o.Reverse = true }
}

// WithOnVisit registers a visit hook.
func WithOnVisit(fn func(v graph.Vertex, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result is the outcome of one search. Depth and Parent are indexed by vertex
// and hold Unreached for vertices the walk never touched.
type Result struct {
	Order  []graph.Vertex
	Depth  []int
	Parent []graph.Vertex
}

// Reached reports whether v was visited.
func (r *Result) Reached(v graph.Vertex) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != Unreached
}

// PathTo returns the vertices from the start to v, or nil if v was not reached.
func (r *Result) PathTo(v graph.Vertex) []graph.Vertex {
	if !r.Reached(v) {
		return nil
	}
	path := make([]graph.Vertex, r.Depth[v]+1)
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = v
		v = r.Parent[v]
	}

	return path
}
