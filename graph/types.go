// SPDX-License-Identifier: MIT

package graph

import "math"

// Vertex identifies a vertex; valid vertices are 0 ≤ v < Order().
type Vertex = int

// Weight is the integral weight of an arc.
type Weight = int32

// MaxOrder is the largest order New and SetOrder accept. A full matrix of
// that order holds 2³⁰ cells (4 GiB of weights).
const MaxOrder = 1 << 15

// InfiniteWeight marks an absent arc. It is never a valid edge weight.
const InfiniteWeight Weight = math.MaxInt32

// Edge is a directed arc between two vertices.
type Edge struct {
	From, To Vertex
}

// WeightedEdge is an arc together with its weight.
type WeightedEdge struct {
	Edge
	Weight Weight
}

// Neighbour is a destination reachable from some vertex and the weight of the arc to it.
type Neighbour struct {
	Vertex Vertex
	Weight Weight
}
