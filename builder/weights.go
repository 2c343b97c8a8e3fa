// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tsplib/core"
	"github.com/katalvlaran/tsplib/graph"
)

// FromWeights builds a graph from an explicit weight section.
// Only FULL_MATRIX is built; every other layout returns ErrUnsupportedFormat.
//
// Stage 1 (Validate): the layout, then len(weights) == N².
// Stage 2 (Prepare): allocate a graph of order N.
// Stage 3 (Execute): add (row, col) for every cell in row-major order; the graph
// rejects the diagonal and the sentinel weight.
//
// Complexity: O(N²).
func FromWeights(weights []int32, format core.EdgeWeightFormat) (*graph.Graph, error) {
	if format != core.FormatFullMatrix {
		return nil, fmt.Errorf("%s: %s: %w", methodFromWeights, format, ErrUnsupportedFormat)
	}
	n, ok := squareSide(len(weights))
	if !ok {
		return nil, fmt.Errorf("%s: %d values: %w", methodFromWeights, len(weights), ErrNonSquareWeights)
	}

	g := graph.New(n)
	var row, col int
	for row = 0; row < n; row++ {
		for col = 0; col < n; col++ {
			g.AddEdge(graph.WeightedEdge{
				Edge:   graph.Edge{From: row, To: col},
				Weight: weights[row*n+col],
			})
		}
	}

	return g, nil
}

// squareSide returns n with n*n == count.
func squareSide(count int) (int, bool) {
	n := int(math.Sqrt(float64(count)))
	for n*n > count {
		n--
	}
	for (n+1)*(n+1) <= count {
		n++
	}

	return n, n*n == count
}
