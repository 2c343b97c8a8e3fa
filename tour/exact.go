// SPDX-License-Identifier: MIT

package tour

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tsplib/graph"
)

// MaxExactStops bounds the number of stops Exact accepts.
const MaxExactStops = 18

// Exact returns an optimal tour starting at the lowest stop, using the
// Held–Karp dynamic program over g.DistanceMatrix().
//
// dp[mask][j] is the cheapest path from the first stop through exactly the
// stops in mask, ending at j. The tour closes from the best j back to the start.
//
// Stage 1 (Validate): 2 ≤ stops ≤ MaxExactStops.
// Stage 2 (Prepare): project the distance matrix onto the stops.
// Stage 3 (Execute): fill dp in increasing mask order.
// Stage 4 (Finalize): close, then rebuild the tour from the parent table.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory for n stops.
func Exact(g *graph.Graph) ([]graph.Vertex, int64, error) {
	stops := Stops(g)
	n := len(stops)
	if n < 2 {
		return nil, 0, ErrTooFewStops
	}
	if n > MaxExactStops {
		return nil, 0, fmt.Errorf("%d stops > %d: %w", n, MaxExactStops, ErrTooManyStops)
	}

	full := g.DistanceMatrix()
	dist := make([][]float64, n)
	for i, u := range stops {
		dist[i] = make([]float64, n)
		for j, v := range stops {
			dist[i][j] = full[u][v]
		}
	}

	var (
		all    = 1<<n - 1
		dp     = make([][]float64, 1<<n)
		parent = make([][]int, 1<<n)
	)
	for mask := range dp {
		dp[mask] = make([]float64, n)
		parent[mask] = make([]int, n)
		for j := range dp[mask] {
			dp[mask][j] = math.Inf(1)
			parent[mask][j] = -1
		}
	}
	dp[1][0] = 0

	for mask := 1; mask <= all; mask += 2 { // masks containing stop 0
		for j := 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ (1 << j)
			for k := 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dist[k][j], 1) {
					continue
				}
				if cand := dp[prev][k] + dist[k][j]; cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	var (
		best = math.Inf(1)
		last = -1
	)
	for j := 1; j < n; j++ {
		if math.IsInf(dist[j][0], 1) {
			continue
		}
		if total := dp[all][j] + dist[j][0]; total < best {
			best, last = total, j
		}
	}
	if last < 0 || math.IsInf(best, 1) {
		return nil, 0, ErrIncompleteGraph
	}

	t := make([]graph.Vertex, n+1)
	t[0], t[n] = stops[0], stops[0]
	for i, mask, j := n-1, all, last; i >= 1; i-- {
		t[i] = stops[j]
		j, mask = parent[mask][j], mask^(1<<j)
	}

	return t, int64(best), nil
}
