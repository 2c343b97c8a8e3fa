// SPDX-License-Identifier: MIT

package tour

import (
	"fmt"

	"github.com/katalvlaran/tsplib/graph"
)

// Stops returns the vertices with at least one outgoing arc, ascending.
// Complexity: O(V²).
func Stops(g *graph.Graph) []graph.Vertex {
	var stops []graph.Vertex
	g.ForEachVertex(func(v graph.Vertex) {
		if n, _ := g.NeighbourCount(v); n > 0 {
			stops = append(stops, v)
		}
	})

	return stops
}

// Validate checks that t is a closed tour over exactly the stops of g.
// Complexity: O(V²) for the stop scan, O(len(t)) for the walk.
func Validate(g *graph.Graph, t []graph.Vertex) error {
	stops := Stops(g)
	if len(t) != len(stops)+1 || len(stops) < 2 {
		return fmt.Errorf("length %d for %d stops: %w", len(t), len(stops), ErrInvalidTour)
	}
	if t[0] != t[len(t)-1] {
		return fmt.Errorf("open walk %d…%d: %w", t[0], t[len(t)-1], ErrInvalidTour)
	}

	want := make(map[graph.Vertex]bool, len(stops))
	for _, v := range stops {
		want[v] = true
	}
	for _, v := range t[:len(t)-1] {
		if !want[v] {
			return fmt.Errorf("vertex %d repeated or not a stop: %w", v, ErrInvalidTour)
		}
		delete(want, v)
	}

	return nil
}

// Cost returns the total weight of the arcs along t.
// A missing arc yields ErrIncompleteGraph.
// Complexity: O(len(t)).
func Cost(g *graph.Graph, t []graph.Vertex) (int64, error) {
	if len(t) < 2 {
		return 0, fmt.Errorf("length %d: %w", len(t), ErrInvalidTour)
	}

	var sum int64
	for i := 0; i+1 < len(t); i++ {
		w, ok := g.Weight(graph.Edge{From: t[i], To: t[i+1]})
		if !ok {
			return 0, fmt.Errorf("arc %d→%d: %w", t[i], t[i+1], ErrIncompleteGraph)
		}
		sum += int64(w)
	}

	return sum, nil
}
