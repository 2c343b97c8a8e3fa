package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tsplib"
	"github.com/katalvlaran/tsplib/bfs"
	"github.com/katalvlaran/tsplib/core"
	"github.com/katalvlaran/tsplib/graph"
	"github.com/katalvlaran/tsplib/tour"
)

const (
	methodExact   = "exact"
	methodTwoOpt  = "2-opt"
	methodNoRoute = "none"
)

// summary is the printed view of one instance.
type summary struct {
	File     string            `yaml:"file"`
	Name     string            `yaml:"name,omitempty"`
	Comment  string            `yaml:"comment,omitempty"`
	Type     *core.ProblemType `yaml:"type,omitempty"`
	Order    int               `yaml:"order"`
	Size     int               `yaml:"size"`
	Density  float64           `yaml:"density"`
	Complete bool              `yaml:"complete"`
	// Connected reports strong connectivity over the vertices with outgoing arcs.
	Connected bool `yaml:"connected"`

	TourMethod string         `yaml:"tour_method,omitempty"`
	TourCost   *int64         `yaml:"tour_cost,omitempty"`
	Tour       []graph.Vertex `yaml:"tour,omitempty,flow"`
}

func summarize(file string, c *tsplib.Content) (summary, error) {
	s := summary{
		File:     file,
		Type:     c.MetaData.Type,
		Order:    c.Graph.Order(),
		Size:     c.Graph.Size(),
		Density:  c.Graph.Density(),
		Complete: c.Graph.IsComplete(),
	}
	if c.MetaData.Name != nil {
		s.Name = *c.MetaData.Name
	}
	if c.MetaData.Comment != nil {
		s.Comment = *c.MetaData.Comment
	}

	connected, err := bfs.StronglyConnected(c.Graph, tour.Stops(c.Graph))
	if err != nil {
		return s, fmt.Errorf("connectivity: %w", err)
	}
	s.Connected = connected

	return s, nil
}

// solve fills the tour fields: Held–Karp when the instance is small enough,
// nearest neighbour refined by 2-opt otherwise. An instance without any
// closed tour is reported with methodNoRoute rather than failing.
func (s *summary) solve(g *graph.Graph) error {
	var (
		t    []graph.Vertex
		cost int64
		err  error
	)
	stops := tour.Stops(g)
	switch {
	case len(stops) <= tour.MaxExactStops:
		s.TourMethod = methodExact
		t, cost, err = tour.Exact(g)
	default:
		s.TourMethod = methodTwoOpt
		if t, err = tour.NearestNeighbour(g, stops[0]); err == nil {
			t, cost, err = tour.TwoOpt(g, t, 0)
		}
	}

	if errors.Is(err, tour.ErrIncompleteGraph) || errors.Is(err, tour.ErrTooFewStops) {
		s.TourMethod = methodNoRoute

		return nil
	}
	if err != nil {
		return err
	}

	s.Tour, s.TourCost = t, &cost

	return nil
}

func writeYAML(w io.Writer, summaries []summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summaries); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	return enc.Close()
}

func writeText(w io.Writer, summaries []summary) error {
	for i, s := range summaries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		typ := "-"
		if s.Type != nil {
			typ = s.Type.String()
		}
		fmt.Fprintf(w, "file:     %s\n", s.File)
		fmt.Fprintf(w, "name:     %s\n", s.Name)
		if s.Comment != "" {
			fmt.Fprintf(w, "comment:  %s\n", s.Comment)
		}
		fmt.Fprintf(w, "type:     %s\n", typ)
		fmt.Fprintf(w, "order:    %d\n", s.Order)
		fmt.Fprintf(w, "size:     %d\n", s.Size)
		fmt.Fprintf(w, "density:  %.4f\n", s.Density)
		fmt.Fprintf(w, "complete: %t\n", s.Complete)
		fmt.Fprintf(w, "connected: %t\n", s.Connected)
		if s.TourMethod != "" {
			fmt.Fprintf(w, "tour:     %s", s.TourMethod)
			if s.TourCost != nil {
				fmt.Fprintf(w, " cost %d %v", *s.TourCost, s.Tour)
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}

	return nil
}
