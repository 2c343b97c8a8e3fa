// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/tsplib/graph"
)

// EdgeList decodes EDGE_LIST data: pairs "u v" followed by one -1.
// Stage 1 (Validate): odd length, trailing -1, hence an even prefix.
// Stage 2 (Execute): pair up the prefix.
// Complexity: O(len(data)).
func EdgeList(data []int32) ([]graph.Edge, error) {
	if len(data)%2 == 0 || data[len(data)-1] != listTerminator {
		return nil, fmt.Errorf("%s: %d values: %w", methodEdgeList, len(data), ErrMalformedEdgeList)
	}

	pairs := data[:len(data)-1]
	edges := make([]graph.Edge, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		edges = append(edges, graph.Edge{From: int(pairs[i]), To: int(pairs[i+1])})
	}

	return edges, nil
}

// AdjacencyList decodes ADJ_LIST data into groups: each group is a source
// followed by its destinations. Groups are separated by -1; empty groups are
// dropped and a missing final -1 is tolerated.
// Complexity: O(len(data)).
func AdjacencyList(data []int32) ([][]int, error) {
	for i, v := range data {
		if v < listTerminator {
			return nil, fmt.Errorf("%s: value %d at %d: %w", methodAdjacencyList, v, i, ErrMalformedAdjacencyList)
		}
	}

	var (
		groups  [][]int
		current []int
	)
	for _, v := range data {
		if v == listTerminator {
			if len(current) > 0 {
				groups = append(groups, current)
			}
			current = nil
			continue
		}
		current = append(current, int(v))
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	return groups, nil
}
