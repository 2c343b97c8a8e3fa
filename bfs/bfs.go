// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/tsplib/graph"
)

// Walk runs breadth-first search on g from start.
//
// Stage 1 (Validate): graph, options and start vertex.
// Stage 2 (Prepare): Depth and Parent filled with Unreached.
// Stage 3 (Execute): FIFO expansion in ascending neighbour order.
//
// Returns ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound, the context
// error on cancellation, or the first OnVisit error.
func Walk(g *graph.Graph, start graph.Vertex, opts ...Option) (*Result, error) {
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
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.Order()
	res := &Result{
		Order:  make([]graph.Vertex, 0, n),
		Depth:  make([]int, n),
		Parent: make([]graph.Vertex, n),
	}
	for i := range res.Depth {
		res.Depth[i], res.Parent[i] = Unreached, Unreached
	}
	res.Depth[start] = 0

	queue := make([]graph.Vertex, 0, n)
	queue = append(queue, start)
	for len(queue) > 0 {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		cur := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, cur)
		if err := o.OnVisit(cur, res.Depth[cur]); err != nil {
			return nil, err
		}
		if o.MaxDepth > 0 && res.Depth[cur] >= o.MaxDepth {
			continue
		}

		for next := 0; next < n; next++ {
			e := graph.Edge{From: cur, To: next}
			if o.Reverse {
				e = graph.Edge{From: next, To: cur}
			}
			if res.Depth[next] != Unreached || !g.HasEdge(e) {
				continue
			}
			res.Depth[next] = res.Depth[cur] + 1
			res.Parent[next] = cur
			queue = append(queue, next)
		}
	}

	return res, nil
}

// StronglyConnected reports whether every vertex in among can reach every
// other one. An empty or single-vertex set is trivially connected.
// Complexity: O(V²).
func StronglyConnected(g *graph.Graph, among []graph.Vertex) (bool, error) {
	if len(among) < 2 {
		return true, nil
	}
	for _, opts := range [][]Option{nil, {WithReverse()}} {
		res, err := Walk(g, among[0], opts...)
		if err != nil {
			return false, err
		}
		for _, v := range among {
			if !res.Reached(v) {
				return false, nil
			}
		}
	}

	return true, nil
}
