// SPDX-License-Identifier: MIT

package grammar

import "github.com/katalvlaran/tsplib/core"

// Token is one decoded TSPLIB record.
// The set of kinds is closed; Fold switches over all of them.
type Token interface {
	token()
}

type (
	// Name is the NAME record.
	Name struct{ Value string }
	// Comment is the COMMENT record.
	Comment struct{ Value string }
	// ProblemType is the TYPE record.
	ProblemType struct{ Value core.ProblemType }
	// Dimension is the DIMENSION record.
	Dimension struct{ Value uint32 }
	// Capacity is the CAPACITY record.
	Capacity struct{ Value uint32 }
	// EdgeWeightType is the EDGE_WEIGHT_TYPE record.
	EdgeWeightType struct{ Value core.EdgeWeightType }
	// EdgeWeightFormat is the EDGE_WEIGHT_FORMAT record.
	EdgeWeightFormat struct{ Value core.EdgeWeightFormat }
	// EdgeDataFormat is the EDGE_DATA_FORMAT record.
	EdgeDataFormat struct{ Value core.EdgeDataFormat }
	// NodeCoordSection holds the nodes of NODE_COORD_SECTION.
	NodeCoordSection struct{ Nodes core.NodeCoords }
	// EdgeDataSection holds the integers of EDGE_DATA_SECTION.
	EdgeDataSection struct{ Values []int32 }
	// EdgeWeightSection holds the integers of EDGE_WEIGHT_SECTION.
	EdgeWeightSection struct{ Values []int32 }
	// Ignored is a line whose tag has no decoder.
	Ignored struct{ Tag string }
)

func (Name) token()              {}
func (Comment) token()           {}
func (ProblemType) token()       {}
func (Dimension) token()         {}
func (Capacity) token()          {}
func (EdgeWeightType) token()    {}
func (EdgeWeightFormat) token()  {}
func (EdgeDataFormat) token()    {}
func (NodeCoordSection) token()  {}
func (EdgeDataSection) token()   {}
func (EdgeWeightSection) token() {}
func (Ignored) token()           {}
