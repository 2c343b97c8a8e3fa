// SPDX-License-Identifier: MIT

package graph

import "math"

// Density returns size / (order·(order−1)), or NaN when order ≤ 1.
func (g *Graph) Density() float64 {
	if g.order <= 1 {
		return math.NaN()
	}

	return float64(g.size) / float64(g.order*(g.order-1))
}

// IsEmpty reports whether the graph has no vertices.
func (g *Graph) IsEmpty() bool { return g.order == 0 }

// IsEdgeless reports whether the graph has no edges.
func (g *Graph) IsEdgeless() bool { return g.size == 0 }

// IsComplete reports whether every ordered pair of distinct vertices is joined.
// Empty and edgeless graphs are never complete.
func (g *Graph) IsComplete() bool {
	return !g.IsEmpty() && !g.IsEdgeless() && g.size == g.order*(g.order-1)
}

// NeighbourCount returns the out-degree of v, and false when v does not exist.
// Complexity: O(V).
func (g *Graph) NeighbourCount(v Vertex) (int, bool) {
	if !g.HasVertex(v) {
		return 0, false
	}
	var n int
	g.forEachInRow(v, func(Neighbour) { n++ })

	return n, true
}

// Neighbours returns the out-neighbours of v in ascending vertex order,
// and false when v does not exist.
// Complexity: O(V).
func (g *Graph) Neighbours(v Vertex) ([]Neighbour, bool) {
	if !g.HasVertex(v) {
		return nil, false
	}
	out := make([]Neighbour, 0)
	g.forEachInRow(v, func(n Neighbour) { out = append(out, n) })

	return out, true
}

// Vertices returns 0..Order()-1.
func (g *Graph) Vertices() []Vertex {
	vs := make([]Vertex, g.order)
	for i := range vs {
		vs[i] = i
	}

	return vs
}

// Edges returns every arc in row-major order.
// Complexity: O(V²).
func (g *Graph) Edges() []WeightedEdge {
	out := make([]WeightedEdge, 0, g.size)
	g.ForEachEdge(func(e WeightedEdge) { out = append(out, e) })

	return out
}

// ForEachVertex calls fn for every vertex in ascending order.
func (g *Graph) ForEachVertex(fn func(Vertex)) {
	for v := 0; v < g.order; v++ {
		fn(v)
	}
}

// ForEachNeighbour calls fn for every out-neighbour of v.
// It reports false when v does not exist.
func (g *Graph) ForEachNeighbour(v Vertex, fn func(Neighbour)) bool {
	if !g.HasVertex(v) {
		return false
	}
	g.forEachInRow(v, fn)

	return true
}

// ForEachEdge calls fn for every arc in row-major order.
func (g *Graph) ForEachEdge(fn func(WeightedEdge)) {
	for from := 0; from < g.order; from++ {
		g.forEachInRow(from, func(n Neighbour) {
			fn(WeightedEdge{Edge: Edge{From: from, To: n.Vertex}, Weight: n.Weight})
		})
	}
}

// forEachInRow visits the non-sentinel cells of row v.
func (g *Graph) forEachInRow(v Vertex, fn func(Neighbour)) {
	row := g.weights[v*g.order : (v+1)*g.order]
	for to, w := range row {
		if w != InfiniteWeight {
			fn(Neighbour{Vertex: to, Weight: w})
		}
	}
}
