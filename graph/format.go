// SPDX-License-Identifier: MIT

package graph

import (
	"math"
	"strconv"
	"strings"
)

// String renders the weight matrix one row per line, ∞ for absent arcs.
func (g *Graph) String() string {
	var (
		sb       strings.Builder
		from, to int
	)
	for from = 0; from < g.order; from++ {
		sb.WriteByte('[')
		for to = 0; to < g.order; to++ {
			if to > 0 {
				sb.WriteString(", ")
			}
			w := g.weights[g.index(from, to)]
			if w == InfiniteWeight {
				sb.WriteString("∞")
			} else {
				sb.WriteString(strconv.FormatInt(int64(w), 10))
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// DistanceMatrix returns an order×order matrix with 0 on the diagonal,
// the arc weight where an arc exists and +Inf elsewhere.
// Complexity: O(V²).
func (g *Graph) DistanceMatrix() [][]float64 {
	dist := make([][]float64, g.order)
	for from := range dist {
		row := make([]float64, g.order)
		for to := range row {
			switch w := g.weights[g.index(from, to)]; {
			case from == to:
				row[to] = 0
			case w == InfiniteWeight:
				row[to] = math.Inf(1)
			default:
				row[to] = float64(w)
			}
		}
		dist[from] = row
	}

	return dist
}
