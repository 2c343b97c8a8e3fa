// Package core defines the shared TSPLIB vocabulary used by every stage of
// the reader: the problem, edge-weight and edge-data enumerations, and the
// coordinate node types.
//
// The values here are plain data. They carry no behavior beyond naming
// (String / MarshalText), so the grammar, the distance functions, the graph
// builder and the top-level reader can all depend on core without depending
// on each other.
//
// Enumerations:
//
//	ProblemType      : TSP, ATSP, SOP, HCP, CRVP, TOUR         (TYPE)
//	EdgeWeightType   : EXPLICIT, EUC, MAX, MAN, CEIL, GEO       (EDGE_WEIGHT_TYPE)
//	EdgeWeightFormat : FUNCTION, FULL_MATRIX, ..., LOWER_DIAG_COL (EDGE_WEIGHT_FORMAT)
//	EdgeDataFormat   : EDGE_LIST, ADJ_LIST                      (EDGE_DATA_FORMAT)
//
// Coordinates:
//
//	NodeCoords is a closed two-variant sum type: Nodes2D or Nodes3D.
//	Consumers branch on it with a type switch:
//
//	switch nodes := coords.(type) {
//	case core.Nodes2D: ...
//	case core.Nodes3D: ...
//	}
//
// The dimensionality lives only in the node type. EUC_2D and EUC_3D both
// decode to WeightEuc; which formula variant applies is decided by the nodes.
package core
