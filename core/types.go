// SPDX-License-Identifier: MIT

package core

import "strconv"

// ProblemType is the TSPLIB TYPE of an instance.
type ProblemType int

const (
	TSP  ProblemType = iota // symmetric traveling salesman
	ATSP                    // asymmetric traveling salesman
	SOP                     // sequential ordering
	HCP                     // Hamiltonian cycle
	CRVP                    // capacitated vehicle routing
	TOUR                    // a collection of tours
)

var problemTypeNames = [...]string{
	TSP:  "TSP",
	ATSP: "ATSP",
	SOP:  "SOP",
	HCP:  "HCP",
	CRVP: "CRVP",
	TOUR: "TOUR",
}

// String returns the TSPLIB keyword of t.
func (t ProblemType) String() string {
	return enumName(problemTypeNames[:], int(t), "ProblemType")
}

// MarshalText implements encoding.TextMarshaler.
func (t ProblemType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// EdgeWeightType declares how edge weights are obtained.
// The 2D/3D split of the TSPLIB keywords is not kept: it is carried by the nodes.
type EdgeWeightType int

const (
	WeightExplicit EdgeWeightType = iota // weights listed in EDGE_WEIGHT_SECTION
	WeightEuc                            // Euclidean, rounded to nearest
	WeightMax                            // maximum of per-axis deltas
	WeightMan                            // Manhattan
	WeightCeil                           // Euclidean, rounded up
	WeightGeo                            // geographical distance
)

var edgeWeightTypeNames = [...]string{
	WeightExplicit: "EXPLICIT",
	WeightEuc:      "EUC",
	WeightMax:      "MAX",
	WeightMan:      "MAN",
	WeightCeil:     "CEIL",
	WeightGeo:      "GEO",
}

// String returns the dimension-agnostic name of w.
func (w EdgeWeightType) String() string {
	return enumName(edgeWeightTypeNames[:], int(w), "EdgeWeightType")
}

// MarshalText implements encoding.TextMarshaler.
func (w EdgeWeightType) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// EdgeWeightFormat declares the layout of an explicit weight section.
type EdgeWeightFormat int

const (
	FormatFunction EdgeWeightFormat = iota
	FormatFullMatrix
	FormatUpperRow
	FormatLowerRow
	FormatUpperDiagRow
	FormatLowerDiagRow
	FormatUpperCol
	FormatLowerCol
	FormatUpperDiagCol
	FormatLowerDiagCol
)

var edgeWeightFormatNames = [...]string{
	FormatFunction:     "FUNCTION",
	FormatFullMatrix:   "FULL_MATRIX",
	FormatUpperRow:     "UPPER_ROW",
	FormatLowerRow:     "LOWER_ROW",
	FormatUpperDiagRow: "UPPER_DIAG_ROW",
	FormatLowerDiagRow: "LOWER_DIAG_ROW",
	FormatUpperCol:     "UPPER_COL",
	FormatLowerCol:     "LOWER_COL",
	FormatUpperDiagCol: "UPPER_DIAG_COL",
	FormatLowerDiagCol: "LOWER_DIAG_COL",
}

// String returns the TSPLIB keyword of f.
func (f EdgeWeightFormat) String() string {
	return enumName(edgeWeightFormatNames[:], int(f), "EdgeWeightFormat")
}

// MarshalText implements encoding.TextMarshaler.
func (f EdgeWeightFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// EdgeDataFormat declares how EDGE_DATA_SECTION encodes the topology.
type EdgeDataFormat int

const (
	DataEdgeList EdgeDataFormat = iota // "u v" pairs terminated by -1
	DataAdjList                        // "u v1 v2 ... -1" groups
)

var edgeDataFormatNames = [...]string{
	DataEdgeList: "EDGE_LIST",
	DataAdjList:  "ADJ_LIST",
}

// String returns the TSPLIB keyword of f.
func (f EdgeDataFormat) String() string {
	return enumName(edgeDataFormatNames[:], int(f), "EdgeDataFormat")
}

// MarshalText implements encoding.TextMarshaler.
func (f EdgeDataFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// enumName resolves an enum value against its name table.
func enumName(names []string, v int, kind string) string {
	if v < 0 || v >= len(names) {
		return kind + "(" + strconv.Itoa(v) + ")"
	}

	return names[v]
}
