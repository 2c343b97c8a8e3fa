// Package tsplib reads TSPLIB instances into dense weighted graphs.
//
// What is TSPLIB?
//
//	The de-facto text format for traveling-salesman and related routing
//	benchmarks: a header of KEY : VALUE records followed by data sections
//	(coordinates, explicit weight matrices, edge lists).
//
// Reading an instance:
//
//	content, err := tsplib.ReadFile("br17.atsp")
//	if err != nil { ... }
//	fmt.Println(*content.MetaData.Name, content.Graph.Order())
//
// Pipeline:
//
//	text ──grammar──▶ Config ──builder──▶ graph.Graph ──▶ Content
//
// The graph is chosen from what the file provides, in this order:
//
//  1. EDGE_DATA_SECTION + EDGE_DATA_FORMAT + NODE_COORD_SECTION + a weight function
//  2. EDGE_WEIGHT_SECTION + EDGE_WEIGHT_FORMAT
//  3. NODE_COORD_SECTION + a weight function (complete graph)
//
// Anything else yields ErrNoGraphData.
//
// Subpackages:
//
//	parser/   generic parser combinators and numeric lexers
//	core/     TSPLIB enums and coordinate nodes
//	grammar/  tag grammar and Config folding
//	distance/ EUC, MAN, MAX, CEIL and GEO edge-weight functions
//	builder/  graph construction from weights, edge data or coordinates
//	graph/    dense directed graph with int32 weights
//	tour/     tour validation, cost, nearest neighbour, 2-opt and Held–Karp
//	bfs/      breadth-first reachability and strong connectivity
//
// The library never logs and never panics on malformed input; failures are
// returned as errors wrapping the sentinels of the package that detected them.
package tsplib
