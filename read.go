// SPDX-License-Identifier: MIT

package tsplib

import (
	"fmt"
	"os"

	"github.com/katalvlaran/tsplib/builder"
	"github.com/katalvlaran/tsplib/core"
	"github.com/katalvlaran/tsplib/distance"
	"github.com/katalvlaran/tsplib/grammar"
	"github.com/katalvlaran/tsplib/graph"
)

// Read decodes a TSPLIB instance held in input.
// It returns a complete Content, or nil and an error wrapping
// grammar.ErrSyntax, one of the builder sentinels or ErrNoGraphData.
//
// TSPLIB itself defines two construction paths: an EDGE_DATA_SECTION over
// coordinates, or an explicit EDGE_WEIGHT_SECTION. Read adds a third: a file
// with only NODE_COORD_SECTION and a non-EXPLICIT EDGE_WEIGHT_TYPE yields the
// complete graph over its nodes rather than ErrNoGraphData.
//
// Stage 1: parse input into a grammar.Config.
// Stage 2: pick a construction path and build the graph.
// Stage 3: attach the metadata.
func Read(input string) (*Content, error) {
	cfg, err := grammar.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}

	g, err := buildGraph(cfg)
	if err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}

	return &Content{
		MetaData: MetaData{
			Name:    cfg.Specification.Name,
			Comment: cfg.Specification.Comment,
			Type:    cfg.Specification.Type,
		},
		Graph: g,
	}, nil
}

// ReadFile reads the file at path and decodes it with Read.
func ReadFile(path string) (*Content, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}

	return Read(string(raw))
}

// buildGraph selects the first construction path whose sections are all present.
func buildGraph(cfg grammar.Config) (*graph.Graph, error) {
	var (
		head = cfg.Specification
		data = cfg.Data
	)
	metric, hasMetric := weightFunction(head.EdgeWeightType)

	switch {
	case data.EdgeData != nil && head.EdgeDataFormat != nil && data.NodeCoords != nil && hasMetric:
		return builder.FromEdgeData(data.EdgeData, *head.EdgeDataFormat, data.NodeCoords, metric)
	case data.EdgeWeights != nil && head.EdgeWeightFormat != nil:
		return builder.FromWeights(data.EdgeWeights, *head.EdgeWeightFormat)
	case data.NodeCoords != nil && hasMetric:
		return builder.FromCoordinates(data.NodeCoords, metric)
	default:
		return nil, ErrNoGraphData
	}
}

// weightFunction returns the metric of a declared, non-EXPLICIT edge-weight type.
func weightFunction(t *core.EdgeWeightType) (distance.Metric, bool) {
	if t == nil || *t == core.WeightExplicit {
		return nil, false
	}

	return distance.For(*t), true
}
