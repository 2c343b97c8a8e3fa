// SPDX-License-Identifier: MIT

package grammar

import "github.com/katalvlaran/tsplib/core"

// Specification holds the header records. A nil field was absent from the input.
type Specification struct {
	Name             *string
	Comment          *string
	Type             *core.ProblemType
	Dimension        *uint32
	Capacity         *uint32
	EdgeWeightType   *core.EdgeWeightType
	EdgeWeightFormat *core.EdgeWeightFormat
	EdgeDataFormat   *core.EdgeDataFormat
}

// Data holds the section payloads. A nil field was absent from the input.
type Data struct {
	NodeCoords  core.NodeCoords
	EdgeData    []int32
	EdgeWeights []int32
}

// Config is the folded view of a TSPLIB file.
type Config struct {
	Specification Specification
	Data          Data
}

// Fold reduces tokens into a Config. Each kind sets only its own field and a
// later token of a kind replaces an earlier one. Ignored tokens have no effect.
// Complexity: O(len(tokens)).
func Fold(tokens []Token) Config {
	var cfg Config
	for _, tok := range tokens {
		switch t := tok.(type) {
		case Name:
			cfg.Specification.Name = &t.Value
		case Comment:
			cfg.Specification.Comment = &t.Value
		case ProblemType:
			cfg.Specification.Type = &t.Value
		case Dimension:
			cfg.Specification.Dimension = &t.Value
		case Capacity:
			cfg.Specification.Capacity = &t.Value
		case EdgeWeightType:
			cfg.Specification.EdgeWeightType = &t.Value
		case EdgeWeightFormat:
			cfg.Specification.EdgeWeightFormat = &t.Value
		case EdgeDataFormat:
			cfg.Specification.EdgeDataFormat = &t.Value
		case NodeCoordSection:
			cfg.Data.NodeCoords = t.Nodes
		case EdgeDataSection:
			cfg.Data.EdgeData = t.Values
		case EdgeWeightSection:
			cfg.Data.EdgeWeights = t.Values
		case Ignored:
		}
	}

	return cfg
}
