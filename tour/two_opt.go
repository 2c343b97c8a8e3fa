// SPDX-License-Identifier: MIT

package tour

import "github.com/katalvlaran/tsplib/graph"

// TwoOpt improves a closed tour by reversing segments while that lowers the
// cost. A move replaces a→b … c→d with a→c … b→d and walks the segment
// backwards, so on asymmetric instances the segment is re-costed from prefix
// sums of forward and backward arc weights. Moves that would use a missing
// arc are never taken.
//
// A pass scans every (i, k) pair once, applying each improving move as found.
// maxPasses bounds the passes; 0 means run to a local optimum.
// The input is not modified.
//
// Complexity: O(V²) per pass plus O(V) per accepted move.
func TwoOpt(g *graph.Graph, t []graph.Vertex, maxPasses int) ([]graph.Vertex, int64, error) {
	if err := Validate(g, t); err != nil {
		return nil, 0, err
	}
	cost, err := Cost(g, t)
	if err != nil {
		return nil, 0, err
	}

	cur := make([]graph.Vertex, len(t))
	copy(cur, t)
	n := len(cur) - 1
	sums := newPrefix(n)
	sums.rebuild(g, cur)

	for pass := 0; maxPasses == 0 || pass < maxPasses; pass++ {
		improved := false
		for i := 1; i < n-1; i++ {
			for k := i + 1; k < n; k++ {
				delta, ok := sums.delta(g, cur, i, k)
				if !ok || delta >= 0 {
					continue
				}
				reverse(cur[i : k+1])
				sums.rebuild(g, cur)
				cost += delta
				improved = true
			}
		}
		if !improved {
			break
		}
	}

	return cur, cost, nil
}

// prefix holds running arc sums along a tour: fwd[x] covers t[0]→…→t[x],
// rev[x] the same arcs walked backwards, and gaps[x] how many of those
// backward arcs are missing.
type prefix struct {
	fwd, rev []int64
	gaps     []int
}

func newPrefix(n int) *prefix {
	return &prefix{
		fwd:  make([]int64, n+1),
		rev:  make([]int64, n+1),
		gaps: make([]int, n+1),
	}
}

// rebuild recomputes the sums for t. Complexity: O(V).
func (p *prefix) rebuild(g *graph.Graph, t []graph.Vertex) {
	for x := 0; x+1 < len(t); x++ {
		fw, _ := arc(g, t[x], t[x+1])
		p.fwd[x+1] = p.fwd[x] + fw

		bw, ok := arc(g, t[x+1], t[x])
		p.gaps[x+1] = p.gaps[x]
		if !ok {
			bw = 0
			p.gaps[x+1]++
		}
		p.rev[x+1] = p.rev[x] + bw
	}
}

// delta is the cost change of reversing t[i..k], and false if the reversed
// tour would need a missing arc. Complexity: O(1).
func (p *prefix) delta(g *graph.Graph, t []graph.Vertex, i, k int) (int64, bool) {
	if p.gaps[k] != p.gaps[i] {
		return 0, false
	}
	a, b := t[i-1], t[i]
	c, d := t[k], t[k+1]

	ac, ok := arc(g, a, c)
	if !ok {
		return 0, false
	}
	bd, ok := arc(g, b, d)
	if !ok {
		return 0, false
	}
	ab, _ := arc(g, a, b)
	cd, _ := arc(g, c, d)

	added := ac + bd + (p.rev[k] - p.rev[i])
	removed := ab + cd + (p.fwd[k] - p.fwd[i])

	return added - removed, true
}

func arc(g *graph.Graph, from, to graph.Vertex) (int64, bool) {
	w, ok := g.Weight(graph.Edge{From: from, To: to})

	return int64(w), ok
}

func reverse(s []graph.Vertex) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
