// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/tsplib/core"
	"github.com/katalvlaran/tsplib/distance"
	"github.com/katalvlaran/tsplib/graph"
)

// FromCoordinates builds the complete directed graph over the coordinate
// nodes: every ordered pair of distinct ids gets an arc weighted by metric.
// The order is the largest id + 1; ids absent from the section stay isolated.
// An id at or beyond graph.MaxOrder yields ErrOrderTooLarge.
// Complexity: O(V²) metric evaluations.
func FromCoordinates(nodes core.NodeCoords, metric distance.Metric) (*graph.Graph, error) {
	var order int64
	if top, ok := core.MaxID(nodes); ok {
		order = int64(top) + 1
	}
	g, err := sized(methodFromCoordinates, order)
	if err != nil {
		return nil, err
	}

	idx := newNodeIndex(nodes)
	for _, from := range idx.order {
		for _, to := range idx.order {
			if from == to {
				continue
			}
			w, _ := idx.weigh(metric, from, to)
			g.AddEdge(graph.WeightedEdge{Edge: graph.Edge{From: from, To: to}, Weight: w})
		}
	}

	return g, nil
}
