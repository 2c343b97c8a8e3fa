// SPDX-License-Identifier: MIT

package core

// Node2D is a NODE_COORD_SECTION entry with two coordinates.
type Node2D struct {
	ID   uint32
	X, Y float64
}

// Node3D is a NODE_COORD_SECTION entry with three coordinates.
type Node3D struct {
	ID      uint32
	X, Y, Z float64
}

// Flatten projects n onto the XY plane.
func (n Node3D) Flatten() Node2D {
	return Node2D{ID: n.ID, X: n.X, Y: n.Y}
}

// NodeCoords is the decoded content of a NODE_COORD_SECTION: either Nodes2D or Nodes3D.
// The set of variants is closed.
type NodeCoords interface {
	// Len returns the number of nodes.
	Len() int
	// Dim returns 2 or 3.
	Dim() int
	// IDs returns the node ids in section order.
	IDs() []uint32

	nodeCoords()
}

// Nodes2D is a section of two-dimensional nodes.
type Nodes2D []Node2D

// Nodes3D is a section of three-dimensional nodes.
type Nodes3D []Node3D

func (ns Nodes2D) Len() int    { return len(ns) }
func (ns Nodes2D) Dim() int    { return 2 }
func (ns Nodes2D) nodeCoords() {}

// IDs returns the node ids in section order.
func (ns Nodes2D) IDs() []uint32 {
	ids := make([]uint32, len(ns))
	for i := range ns {
		ids[i] = ns[i].ID
	}

	return ids
}

func (ns Nodes3D) Len() int    { return len(ns) }
func (ns Nodes3D) Dim() int    { return 3 }
func (ns Nodes3D) nodeCoords() {}

// IDs returns the node ids in section order.
func (ns Nodes3D) IDs() []uint32 {
	ids := make([]uint32, len(ns))
	for i := range ns {
		ids[i] = ns[i].ID
	}

	return ids
}

// MaxID returns the largest node id, and false for an empty section.
func MaxID(coords NodeCoords) (uint32, bool) {
	if coords == nil || coords.Len() == 0 {
		return 0, false
	}
	var top uint32
	for _, id := range coords.IDs() {
		if id > top {
			top = id
		}
	}

	return top, true
}
