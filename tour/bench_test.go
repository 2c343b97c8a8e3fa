package tour_test

import (
	"testing"

	"github.com/katalvlaran/tsplib"
	"github.com/katalvlaran/tsplib/graph"
	"github.com/katalvlaran/tsplib/tour"
)

var sinkCost int64

func loadBr17(b *testing.B) *graph.Graph {
	b.Helper()
	c, err := tsplib.ReadFile("../testdata/br17.atsp")
	if err != nil {
		b.Fatal(err)
	}

	return c.Graph
}

func BenchmarkNearestNeighbourTwoOpt(b *testing.B) {
	g := loadBr17(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t, err := tour.NearestNeighbour(g, 0)
		if err != nil {
			b.Fatal(err)
		}
		_, sinkCost, err = tour.TwoOpt(g, t, 0)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExact(b *testing.B) {
	g := loadBr17(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		if _, sinkCost, err = tour.Exact(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTwoOpt400(b *testing.B) {
	g := randomGraph(400, true, 1)
	start, err := tour.NearestNeighbour(g, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, sinkCost, err = tour.TwoOpt(g, start, 0); err != nil {
			b.Fatal(err)
		}
	}
}
