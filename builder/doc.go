// Package builder turns decoded TSPLIB payloads into graph.Graph values.
//
// Three construction paths are offered:
//
//   - FromWeights: an explicit EDGE_WEIGHT_SECTION in FULL_MATRIX layout.
//     Cell (row, col) becomes the arc row → col; diagonal cells never become arcs.
//   - FromEdgeData: an EDGE_DATA_SECTION (EDGE_LIST or ADJ_LIST) over coordinate
//     nodes, each arc weighted by a distance.Metric.
//   - FromCoordinates: the complete directed graph over coordinate nodes, for
//     instances that define only NODE_COORD_SECTION and a weight function.
//
// Vertices are node ids: node 7 is vertex 7. EDGE_LIST and coordinate graphs
// are large enough for every referenced id, so 1-based files leave vertex 0
// isolated; an ADJ_LIST graph has one vertex per group.
//
// Errors:
//
//   - ErrNonSquareWeights       FULL_MATRIX data is not N² long.
//   - ErrMalformedEdgeList      EDGE_LIST data is not "u v ... -1".
//   - ErrMalformedAdjacencyList ADJ_LIST data holds values below -1.
//   - ErrOrderTooLarge          ids or groups beyond graph.MaxOrder.
//   - ErrUnsupportedFormat      a layout that is recognized but not built.
//
// Every constructor validates its input before touching a graph and returns
// either a complete graph or a nil graph with an error.
package builder
