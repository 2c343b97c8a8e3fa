package tour_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplib"
	"github.com/katalvlaran/tsplib/graph"
	"github.com/katalvlaran/tsplib/tour"
)

func load(t *testing.T, path string) *graph.Graph {
	t.Helper()
	c, err := tsplib.ReadFile(path)
	require.NoError(t, err)
	require.NotNil(t, c.Graph)

	return c.Graph
}

// line returns 0→1→2 with no way back.
func line() *graph.Graph {
	g := graph.New(3)
	g.AddEdge(graph.WeightedEdge{Edge: graph.Edge{From: 0, To: 1}, Weight: 1})
	g.AddEdge(graph.WeightedEdge{Edge: graph.Edge{From: 1, To: 2}, Weight: 1})

	return g
}

func TestStops(t *testing.T) {
	g := load(t, "../testdata/square4.tsp")
	assert.Equal(t, []graph.Vertex{1, 2, 3, 4}, tour.Stops(g))
	assert.Empty(t, tour.Stops(graph.New(3)))
}

func TestValidate(t *testing.T) {
	g := load(t, "../testdata/square4.tsp")

	assert.NoError(t, tour.Validate(g, []graph.Vertex{1, 2, 3, 4, 1}))
	assert.NoError(t, tour.Validate(g, []graph.Vertex{3, 1, 4, 2, 3}))

	bad := map[string][]graph.Vertex{
		"empty":        nil,
		"open":         {1, 2, 3, 4, 2},
		"short":        {1, 2, 3, 1},
		"repeat":       {1, 2, 2, 4, 1},
		"isolated":     {0, 2, 3, 4, 0},
		"out of range": {1, 2, 3, 9, 1},
	}
	for name, tr := range bad {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, tour.Validate(g, tr), tour.ErrInvalidTour)
		})
	}
}

func TestCost(t *testing.T) {
	g := load(t, "../testdata/square4.tsp")

	c, err := tour.Cost(g, []graph.Vertex{1, 2, 3, 4, 1})
	require.NoError(t, err)
	assert.Equal(t, int64(14), c)

	c, err = tour.Cost(g, []graph.Vertex{1, 3, 2, 4, 1})
	require.NoError(t, err)
	assert.Equal(t, int64(18), c)

	_, err = tour.Cost(line(), []graph.Vertex{0, 1, 2, 0})
	assert.ErrorIs(t, err, tour.ErrIncompleteGraph)

	_, err = tour.Cost(g, []graph.Vertex{1})
	assert.ErrorIs(t, err, tour.ErrInvalidTour)
}

func TestNearestNeighbour(t *testing.T) {
	g := load(t, "../testdata/square4.tsp")

	tr, err := tour.NearestNeighbour(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []graph.Vertex{1, 2, 3, 4, 1}, tr)
	require.NoError(t, tour.Validate(g, tr))

	_, err = tour.NearestNeighbour(g, 0)
	assert.ErrorIs(t, err, tour.ErrInvalidTour)

	_, err = tour.NearestNeighbour(line(), 0)
	assert.ErrorIs(t, err, tour.ErrIncompleteGraph)

	_, err = tour.NearestNeighbour(graph.New(2), 0)
	assert.ErrorIs(t, err, tour.ErrTooFewStops)
}

func TestTwoOpt(t *testing.T) {
	g := load(t, "../testdata/square4.tsp")
	crossed := []graph.Vertex{1, 3, 2, 4, 1}

	tr, c, err := tour.TwoOpt(g, crossed, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(14), c)
	assert.Equal(t, []graph.Vertex{1, 3, 2, 4, 1}, crossed, "input untouched")

	got, err := tour.Cost(g, tr)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	_, _, err = tour.TwoOpt(g, []graph.Vertex{1, 2, 1}, 0)
	assert.ErrorIs(t, err, tour.ErrInvalidTour)
}

func TestTwoOptAsymmetric(t *testing.T) {
	g := load(t, "../testdata/br17.atsp")

	start, err := tour.NearestNeighbour(g, 0)
	require.NoError(t, err)
	startCost, err := tour.Cost(g, start)
	require.NoError(t, err)

	tr, c, err := tour.TwoOpt(g, start, 0)
	require.NoError(t, err)
	require.NoError(t, tour.Validate(g, tr))
	assert.LessOrEqual(t, c, startCost)

	got, err := tour.Cost(g, tr)
	require.NoError(t, err)
	assert.Equal(t, c, got, "reported cost matches the walk")
}

// randomGraph returns a complete graph on n vertices with weights in [1, 100].
// Symmetric graphs mirror every weight.
func randomGraph(n int, symmetric bool, seed int64) *graph.Graph {
	rng := rand.New(rand.NewSource(seed))
	g := graph.New(n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v || (symmetric && v < u) {
				continue
			}
			w := graph.Weight(1 + rng.Intn(100))
			g.AddEdge(graph.WeightedEdge{Edge: graph.Edge{From: u, To: v}, Weight: w})
			if symmetric {
				g.AddEdge(graph.WeightedEdge{Edge: graph.Edge{From: v, To: u}, Weight: w})
			}
		}
	}

	return g
}

// requireTwoOptLocal re-costs every single reversal of tr from scratch and
// fails if any is cheaper than cost.
func requireTwoOptLocal(t *testing.T, g *graph.Graph, tr []graph.Vertex, cost int64) {
	t.Helper()
	n := len(tr) - 1
	for i := 1; i < n-1; i++ {
		for k := i + 1; k < n; k++ {
			cand := append([]graph.Vertex(nil), tr...)
			for a, b := i, k; a < b; a, b = a+1, b-1 {
				cand[a], cand[b] = cand[b], cand[a]
			}
			c, err := tour.Cost(g, cand)
			require.NoError(t, err)
			require.GreaterOrEqual(t, c, cost, "reversing %d..%d improves", i, k)
		}
	}
}

func TestTwoOptLocalOptimum(t *testing.T) {
	for _, tc := range []struct {
		name      string
		symmetric bool
	}{
		{"symmetric", true},
		{"asymmetric", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := randomGraph(40, tc.symmetric, 11)
			start, err := tour.NearestNeighbour(g, 0)
			require.NoError(t, err)

			tr, c, err := tour.TwoOpt(g, start, 0)
			require.NoError(t, err)
			require.NoError(t, tour.Validate(g, tr))

			got, err := tour.Cost(g, tr)
			require.NoError(t, err)
			require.Equal(t, got, c, "reported cost matches the walk")
			requireTwoOptLocal(t, g, tr, c)
		})
	}
}

func TestTwoOptPassLimit(t *testing.T) {
	g := randomGraph(40, false, 3)
	start, err := tour.NearestNeighbour(g, 0)
	require.NoError(t, err)

	one, c1, err := tour.TwoOpt(g, start, 1)
	require.NoError(t, err)
	_, cAll, err := tour.TwoOpt(g, start, 0)
	require.NoError(t, err)

	got, err := tour.Cost(g, one)
	require.NoError(t, err)
	assert.Equal(t, got, c1)
	assert.LessOrEqual(t, cAll, c1)
}

func TestTwoOptSkipsMissingArcs(t *testing.T) {
	// Only the ring 0→1→2→3→0 and the chords needed for one reversal exist;
	// reversing [1,2] would need 2→1, which is missing.
	g := graph.New(4)
	for _, e := range []graph.WeightedEdge{
		{Edge: graph.Edge{From: 0, To: 1}, Weight: 50},
		{Edge: graph.Edge{From: 1, To: 2}, Weight: 1},
		{Edge: graph.Edge{From: 2, To: 3}, Weight: 50},
		{Edge: graph.Edge{From: 3, To: 0}, Weight: 1},
		{Edge: graph.Edge{From: 0, To: 2}, Weight: 1},
		{Edge: graph.Edge{From: 1, To: 3}, Weight: 1},
	} {
		require.True(t, g.AddEdge(e))
	}

	tr, c, err := tour.TwoOpt(g, []graph.Vertex{0, 1, 2, 3, 0}, 0)
	require.NoError(t, err)
	assert.Equal(t, []graph.Vertex{0, 1, 2, 3, 0}, tr)
	assert.Equal(t, int64(102), c)
}

func TestExact(t *testing.T) {
	g := load(t, "../testdata/square4.tsp")

	tr, c, err := tour.Exact(g)
	require.NoError(t, err)
	assert.Equal(t, int64(14), c)
	assert.Equal(t, graph.Vertex(1), tr[0])
	require.NoError(t, tour.Validate(g, tr))

	_, _, err = tour.Exact(line())
	assert.ErrorIs(t, err, tour.ErrIncompleteGraph)

	_, _, err = tour.Exact(graph.New(1))
	assert.ErrorIs(t, err, tour.ErrTooFewStops)

	big := graph.New(tour.MaxExactStops + 1)
	big.ForEachVertex(func(u graph.Vertex) {
		big.ForEachVertex(func(v graph.Vertex) {
			big.AddEdge(graph.WeightedEdge{Edge: graph.Edge{From: u, To: v}, Weight: 1})
		})
	})
	_, _, err = tour.Exact(big)
	assert.ErrorIs(t, err, tour.ErrTooManyStops)
}

func TestExactBr17(t *testing.T) {
	if testing.Short() {
		t.Skip("Held–Karp over 17 stops")
	}
	g := load(t, "../testdata/br17.atsp")

	tr, c, err := tour.Exact(g)
	require.NoError(t, err)
	assert.Equal(t, int64(39), c)

	got, err := tour.Cost(g, tr)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}
