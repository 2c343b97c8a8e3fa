// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/tsplib/core"
	"github.com/katalvlaran/tsplib/distance"
	"github.com/katalvlaran/tsplib/graph"
)

// nodeIndex resolves node ids to positions in a coordinate section.
// When an id repeats, its first occurrence wins.
type nodeIndex struct {
	coords core.NodeCoords
	pos    map[int]int
	order  []int // distinct ids in section order
}

func newNodeIndex(coords core.NodeCoords) nodeIndex {
	idx := nodeIndex{coords: coords, pos: make(map[int]int)}
	if coords == nil {
		return idx
	}
	for i, id := range coords.IDs() {
		if _, seen := idx.pos[int(id)]; seen {
			continue
		}
		idx.pos[int(id)] = i
		idx.order = append(idx.order, int(id))
	}

	return idx
}

// weigh returns the metric between nodes u and v, and false if either is unknown.
func (idx nodeIndex) weigh(m distance.Metric, u, v graph.Vertex) (graph.Weight, bool) {
	i, ok := idx.pos[u]
	if !ok {
		return 0, false
	}
	j, ok := idx.pos[v]
	if !ok {
		return 0, false
	}

	return distance.Between(m, idx.coords, i, j), true
}

// sized returns a graph of the given order, or ErrOrderTooLarge.
// order is int64 so that id + 1 cannot wrap on 32-bit platforms.
func sized(method string, order int64) (*graph.Graph, error) {
	if order > graph.MaxOrder {
		return nil, fmt.Errorf("%s: order %d > %d: %w", method, order, graph.MaxOrder, ErrOrderTooLarge)
	}

	return graph.New(int(order)), nil
}
