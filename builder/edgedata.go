// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/tsplib/core"
	"github.com/katalvlaran/tsplib/distance"
	"github.com/katalvlaran/tsplib/graph"
)

// FromEdgeData builds the graph described by an EDGE_DATA_SECTION, weighting
// each arc with metric over the matching coordinate nodes.
//
// Stage 1 (Validate): decode data according to format.
// Stage 2 (Prepare): size the graph. EDGE_LIST covers every referenced id;
// ADJ_LIST gets one vertex per group. Orders past graph.MaxOrder yield
// ErrOrderTooLarge.
// Stage 3 (Execute): add each arc whose endpoints are both known nodes.
// Arcs naming unknown nodes or vertices beyond the order, loops and repeats
// are skipped.
//
// Complexity: O(len(data) + V²).
func FromEdgeData(data []int32, format core.EdgeDataFormat, nodes core.NodeCoords, metric distance.Metric) (*graph.Graph, error) {
	var (
		edges []graph.Edge
		order int64
	)
	switch format {
	case core.DataEdgeList:
		list, err := EdgeList(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodFromEdgeData, err)
		}
		edges = list
		order = int64(maxEndpoint(edges)) + 1
	case core.DataAdjList:
		groups, err := AdjacencyList(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodFromEdgeData, err)
		}
		for _, group := range groups {
			for _, to := range group[1:] {
				edges = append(edges, graph.Edge{From: group[0], To: to})
			}
		}
		order = int64(len(groups))
	default:
		return nil, fmt.Errorf("%s: %s: %w", methodFromEdgeData, format, ErrUnsupportedFormat)
	}

	g, err := sized(methodFromEdgeData, order)
	if err != nil {
		return nil, err
	}

	idx := newNodeIndex(nodes)
	for _, e := range edges {
		w, ok := idx.weigh(metric, e.From, e.To)
		if !ok {
			continue
		}
		g.AddEdge(graph.WeightedEdge{Edge: e, Weight: w})
	}

	return g, nil
}

// maxEndpoint returns the largest non-negative endpoint, or -1.
func maxEndpoint(edges []graph.Edge) int {
	top := -1
	for _, e := range edges {
		if e.From > top {
			top = e.From
		}
		if e.To > top {
			top = e.To
		}
	}

	return top
}
