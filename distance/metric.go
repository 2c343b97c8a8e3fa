// SPDX-License-Identifier: MIT

package distance

import (
	"math"

	"github.com/katalvlaran/tsplib/core"
)

// Metric computes the weight between two nodes of the same dimensionality.
type Metric interface {
	Plane(a, b core.Node2D) int32
	Space(a, b core.Node3D) int32
}

// Between dispatches to Plane or Space by the node type of coords.
// i and j are indices into coords; out-of-range indices panic.
func Between(m Metric, coords core.NodeCoords, i, j int) int32 {
	switch nodes := coords.(type) {
	case core.Nodes2D:
		return m.Plane(nodes[i], nodes[j])
	case core.Nodes3D:
		return m.Space(nodes[i], nodes[j])
	default:
		return 0
	}
}

// For returns the Metric of t. EXPLICIT and unknown types get Zero.
func For(t core.EdgeWeightType) Metric {
	switch t {
	case core.WeightEuc:
		return Euclidean{}
	case core.WeightMan:
		return Manhattan{}
	case core.WeightMax:
		return Maximum{}
	case core.WeightCeil:
		return Ceiling{}
	case core.WeightGeo:
		return Geographical{}
	default:
		return Zero{}
	}
}

// Euclidean is the EUC_2D / EUC_3D distance.
type Euclidean struct{}

func (Euclidean) Plane(a, b core.Node2D) int32 {
	return int32(math.Round(math.Hypot(a.X-b.X, a.Y-b.Y)))
}

func (Euclidean) Space(a, b core.Node3D) int32 {
	return int32(math.Round(norm3(a, b)))
}

// Ceiling is the CEIL_2D distance, extended to 3D the obvious way.
type Ceiling struct{}

func (Ceiling) Plane(a, b core.Node2D) int32 {
	return int32(math.Ceil(math.Hypot(a.X-b.X, a.Y-b.Y)))
}

func (Ceiling) Space(a, b core.Node3D) int32 {
	return int32(math.Ceil(norm3(a, b)))
}

// Manhattan is the MAN_2D / MAN_3D distance.
type Manhattan struct{}

func (Manhattan) Plane(a, b core.Node2D) int32 {
	return int32(math.Round(math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)))
}

func (Manhattan) Space(a, b core.Node3D) int32 {
	return int32(math.Round(math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y) + math.Abs(a.Z-b.Z)))
}

// Maximum is the MAX_2D / MAX_3D distance.
type Maximum struct{}

func (Maximum) Plane(a, b core.Node2D) int32 {
	return int32(math.Round(math.Max(math.Abs(a.X-b.X), math.Abs(a.Y-b.Y))))
}

func (Maximum) Space(a, b core.Node3D) int32 {
	d := math.Max(math.Abs(a.X-b.X), math.Abs(a.Y-b.Y))

	return int32(math.Round(math.Max(d, math.Abs(a.Z-b.Z))))
}

// Zero weighs every pair 0.
type Zero struct{}

func (Zero) Plane(core.Node2D, core.Node2D) int32 { return 0 }
func (Zero) Space(core.Node3D, core.Node3D) int32 { return 0 }

func norm3(a, b core.Node3D) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
