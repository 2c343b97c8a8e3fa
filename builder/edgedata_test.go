// SPDX-License-Identifier: MIT

package builder_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplib/builder"
	"github.com/katalvlaran/tsplib/core"
	"github.com/katalvlaran/tsplib/distance"
	"github.com/katalvlaran/tsplib/graph"
)

// line holds nodes 1..3 on the segment (0,0)-(6,8), 5 apart.
var line = core.Nodes2D{
	{ID: 1, X: 0, Y: 0},
	{ID: 2, X: 3, Y: 4},
	{ID: 3, X: 6, Y: 8},
}

func TestFromEdgeData_EdgeList(t *testing.T) {
	data := []int32{1, 2, 2, 3, 3, 1, -1}

	g, err := builder.FromEdgeData(data, core.DataEdgeList, line, distance.Euclidean{})
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order(), "order covers the largest id")
	assert.Equal(t, 3, g.Size())

	w, ok := g.Weight(edge(1, 2))
	require.True(t, ok)
	assert.Equal(t, graph.Weight(5), w)
	w, ok = g.Weight(edge(3, 1))
	require.True(t, ok)
	assert.Equal(t, graph.Weight(10), w)
	assert.False(t, g.HasEdge(edge(2, 1)))

	n, _ := g.NeighbourCount(0)
	assert.Equal(t, 0, n, "vertex 0 has no node")
}

func TestFromEdgeData_SkipsUnknownAndLoops(t *testing.T) {
	data := []int32{1, 1, 2, 2, 3, 5, 1, 3, -1}

	g, err := builder.FromEdgeData(data, core.DataEdgeList, line, distance.Euclidean{})
	require.NoError(t, err)
	assert.Equal(t, 6, g.Order())
	assert.Equal(t, []graph.WeightedEdge{{Edge: edge(1, 3), Weight: 10}}, g.Edges())
}

func TestFromEdgeData_AdjList(t *testing.T) {
	nodes := core.Nodes2D{{ID: 0}, {ID: 1, X: 3, Y: 4}, {ID: 2, X: 6, Y: 8}}
	data := []int32{0, 1, 2, -1, 1, 2, 9, -1, 2, -1}

	g, err := builder.FromEdgeData(data, core.DataAdjList, nodes, distance.Manhattan{})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order(), "one vertex per group")
	assert.Equal(t, 3, g.Size(), "1→9 names no node")

	w, ok := g.Weight(edge(0, 2))
	require.True(t, ok)
	assert.Equal(t, graph.Weight(14), w)
}

func TestFromEdgeData_AdjListOrderIsGroupCount(t *testing.T) {
	data := []int32{1, 2, 3, -1, 2, 3, -1}

	g, err := builder.FromEdgeData(data, core.DataAdjList, line, distance.Euclidean{})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Order())
	assert.True(t, g.IsEdgeless(), "ids past the group count are not vertices")
}

func TestFromEdgeData_AdjListHeadOnlyGroups(t *testing.T) {
	data := []int32{0, 1, -1, 1, 0, -1, 0, -1, 1, -1}
	nodes := core.Nodes2D{{ID: 0}, {ID: 1, X: 1}}

	g, err := builder.FromEdgeData(data, core.DataAdjList, nodes, distance.Euclidean{})
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 2, g.Size())
}

func TestFromEdgeData_FirstNodeWins(t *testing.T) {
	nodes := core.Nodes2D{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 3, Y: 4},
		{ID: 2, X: 300, Y: 400},
	}

	g, err := builder.FromEdgeData([]int32{1, 2, -1}, core.DataEdgeList, nodes, distance.Euclidean{})
	require.NoError(t, err)
	w, _ := g.Weight(edge(1, 2))
	assert.Equal(t, graph.Weight(5), w)
}

func TestFromEdgeData_Space(t *testing.T) {
	nodes := core.Nodes3D{{ID: 0}, {ID: 1, X: 1, Y: 2, Z: 2}}

	g, err := builder.FromEdgeData([]int32{0, 1, 1, 0, -1}, core.DataEdgeList, nodes, distance.Euclidean{})
	require.NoError(t, err)
	w, _ := g.Weight(edge(1, 0))
	assert.Equal(t, graph.Weight(3), w)
}

func TestFromEdgeData_Errors(t *testing.T) {
	g, err := builder.FromEdgeData([]int32{1, 2}, core.DataEdgeList, line, distance.Euclidean{})
	assert.Nil(t, g)
	assert.True(t, errors.Is(err, builder.ErrMalformedEdgeList))

	g, err = builder.FromEdgeData([]int32{1, -7}, core.DataAdjList, line, distance.Euclidean{})
	assert.Nil(t, g)
	assert.True(t, errors.Is(err, builder.ErrMalformedAdjacencyList))

	g, err = builder.FromEdgeData([]int32{-1}, core.EdgeDataFormat(9), line, distance.Euclidean{})
	assert.Nil(t, g)
	assert.True(t, errors.Is(err, builder.ErrUnsupportedFormat))
}

func TestFromEdgeData_OrderTooLarge(t *testing.T) {
	g, err := builder.FromEdgeData([]int32{1, 2000000000, -1}, core.DataEdgeList, line, distance.Euclidean{})
	assert.Nil(t, g)
	assert.ErrorIs(t, err, builder.ErrOrderTooLarge)

	g, err = builder.FromEdgeData([]int32{1, math.MaxInt32, -1}, core.DataEdgeList, line, distance.Euclidean{})
	assert.Nil(t, g)
	assert.ErrorIs(t, err, builder.ErrOrderTooLarge)

	groups := make([]int32, 0, 2*(graph.MaxOrder+1))
	for i := 0; i <= graph.MaxOrder; i++ {
		groups = append(groups, 0, -1)
	}
	g, err = builder.FromEdgeData(groups, core.DataAdjList, line, distance.Euclidean{})
	assert.Nil(t, g)
	assert.ErrorIs(t, err, builder.ErrOrderTooLarge)
}

func TestFromEdgeData_NoNodes(t *testing.T) {
	g, err := builder.FromEdgeData([]int32{0, 1, -1}, core.DataEdgeList, nil, distance.Euclidean{})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Order())
	assert.True(t, g.IsEdgeless())
}
