// SPDX-License-Identifier: MIT

package graph

import "fmt"

// Graph is a dense directed graph with int32 weights.
type Graph struct {
	order   int      // number of vertices
	size    int      // number of edges
	weights []Weight // row-major, len == order*order
}

// New returns an edgeless graph with the given number of vertices.
// A negative order is treated as zero. An order above MaxOrder panics, like
// make with an impossible length; callers holding an untrusted order check it
// with CheckOrder first.
// Complexity: O(order²).
func New(order int) *Graph {
	if order < 0 {
		order = 0
	}

	return &Graph{order: order, weights: newCells(order)}
}

// CheckOrder reports ErrOrderTooLarge for an order New would refuse.
func CheckOrder(order int) error {
	if order > MaxOrder {
		return fmt.Errorf("order %d > %d: %w", order, MaxOrder, ErrOrderTooLarge)
	}

	return nil
}

// newCells allocates order² cells set to InfiniteWeight.
func newCells(order int) []Weight {
	if err := CheckOrder(order); err != nil {
		panic(err)
	}
	cells := make([]Weight, order*order)
	for i := range cells {
		cells[i] = InfiniteWeight
	}

	return cells
}

// index returns the flat offset of (from, to); bounds must be checked by the caller.
func (g *Graph) index(from, to Vertex) int {
	return from*g.order + to
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.order }

// Size returns the number of edges.
func (g *Graph) Size() int { return g.size }

// AddVertex appends an isolated vertex and returns it.
// Complexity: O(V²) because the row stride changes.
func (g *Graph) AddVertex() Vertex {
	g.SetOrder(g.order + 1)

	return g.order - 1
}

// SetOrder resizes the vertex set. Like New it panics above MaxOrder.
// Stage 1: copy the surviving (from, to) block into fresh storage.
// Stage 2: recount edges, so edges touching removed vertices no longer count.
// Complexity: O(max(old, new)²).
func (g *Graph) SetOrder(order int) {
	if order < 0 {
		order = 0
	}
	if order == g.order {
		return
	}

	var (
		keep  = min(order, g.order)
		cells = newCells(order)
		size  int
		i, j  int
	)
	for i = 0; i < keep; i++ {
		for j = 0; j < keep; j++ {
			w := g.weights[g.index(i, j)]
			cells[i*order+j] = w
			if w != InfiniteWeight {
				size++
			}
		}
	}

	g.order, g.size, g.weights = order, size, cells
}

// HasVertex reports whether v is within [0, Order()).
func (g *Graph) HasVertex(v Vertex) bool {
	return v >= 0 && v < g.order
}

// valid reports whether e joins two distinct existing vertices.
func (g *Graph) valid(e Edge) bool {
	return e.From != e.To && g.HasVertex(e.From) && g.HasVertex(e.To)
}

// HasEdge reports whether the arc e exists.
func (g *Graph) HasEdge(e Edge) bool {
	return g.valid(e) && g.weights[g.index(e.From, e.To)] != InfiniteWeight
}

// AddEdge inserts a new arc.
// It reports false, leaving the graph unchanged, when the arc is a loop, an
// endpoint is missing, the arc already exists or the weight is InfiniteWeight.
// Complexity: O(1).
func (g *Graph) AddEdge(e WeightedEdge) bool {
	if e.Weight == InfiniteWeight || !g.valid(e.Edge) {
		return false
	}
	idx := g.index(e.From, e.To)
	if g.weights[idx] != InfiniteWeight {
		return false
	}
	g.weights[idx] = e.Weight
	g.size++

	return true
}

// RemoveEdge deletes an existing arc and reports whether it did.
func (g *Graph) RemoveEdge(e Edge) bool {
	if !g.HasEdge(e) {
		return false
	}
	g.weights[g.index(e.From, e.To)] = InfiniteWeight
	g.size--

	return true
}

// Weight returns the weight of e, and false when e does not exist.
func (g *Graph) Weight(e Edge) (Weight, bool) {
	if !g.HasEdge(e) {
		return 0, false
	}

	return g.weights[g.index(e.From, e.To)], true
}

// SetWeight overwrites the weight of an existing arc.
// InfiniteWeight is rejected; use RemoveEdge to delete.
func (g *Graph) SetWeight(e Edge, w Weight) bool {
	if w == InfiniteWeight || !g.HasEdge(e) {
		return false
	}
	g.weights[g.index(e.From, e.To)] = w

	return true
}

// WeightUnchecked returns the raw cell for e, InfiniteWeight included.
// Both endpoints must be valid vertices; out-of-range values panic.
func (g *Graph) WeightUnchecked(e Edge) Weight {
	return g.weights[g.index(e.From, e.To)]
}

// Clone returns an independent deep copy.
// Complexity: O(V²).
func (g *Graph) Clone() *Graph {
	cells := make([]Weight, len(g.weights))
	copy(cells, g.weights)

	return &Graph{order: g.order, size: g.size, weights: cells}
}
