// SPDX-License-Identifier: MIT

package tour

import (
	"fmt"

	"github.com/katalvlaran/tsplib/graph"
)

// NearestNeighbour builds a tour from start by always moving to the cheapest
// unvisited stop; ties go to the lower vertex.
//
// Stage 1 (Validate): at least two stops, start is one of them.
// Stage 2 (Execute): greedy walk over the stops.
// Stage 3 (Finalize): close the walk back to start.
//
// Complexity: O(V²).
func NearestNeighbour(g *graph.Graph, start graph.Vertex) ([]graph.Vertex, error) {
	stops := Stops(g)
	if len(stops) < 2 {
		return nil, ErrTooFewStops
	}

	pending := make(map[graph.Vertex]bool, len(stops))
	for _, v := range stops {
		pending[v] = true
	}
	if !pending[start] {
		return nil, fmt.Errorf("start %d is not a stop: %w", start, ErrInvalidTour)
	}
	delete(pending, start)

	t := make([]graph.Vertex, 0, len(stops)+1)
	t = append(t, start)
	for cur := start; len(pending) > 0; {
		var (
			next  = -1
			bestW graph.Weight
		)
		g.ForEachNeighbour(cur, func(n graph.Neighbour) {
			if !pending[n.Vertex] {
				return
			}
			if next < 0 || n.Weight < bestW {
				next, bestW = n.Vertex, n.Weight
			}
		})
		if next < 0 {
			return nil, fmt.Errorf("stuck at %d: %w", cur, ErrIncompleteGraph)
		}
		delete(pending, next)
		t = append(t, next)
		cur = next
	}

	if !g.HasEdge(graph.Edge{From: t[len(t)-1], To: start}) {
		return nil, fmt.Errorf("no arc back to %d: %w", start, ErrIncompleteGraph)
	}

	return append(t, start), nil
}
