// Package bfs provides breadth-first search over a dense graph.Graph,
// returning hop distances, parent links, and visit order.
//
// Search follows arcs forward by default; WithReverse walks them backwards,
// which together with a forward walk decides strong connectivity.
// Weights are ignored: BFS counts hops, not cost.
//
// Complexity: O(V²), since each dequeued vertex scans a full matrix row.
package bfs
