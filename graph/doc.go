// Package graph provides the dense directed weighted graph produced by the
// TSPLIB reader.
//
// Representation:
//
//	Vertices are the integers [0, Order()). The weights live in one flat,
//	row-major slice of Order()*Order() cells; cell (from, to) holds the
//	weight of the arc from → to or InfiniteWeight when the arc is absent.
//	InfiniteWeight (math.MaxInt32) therefore never is a legal edge weight.
//
// Contract:
//
//   - AddEdge rejects self-loops, out-of-range endpoints, existing edges and the
//     sentinel weight, reporting false; the graph is left untouched.
//   - Size() is the number of non-sentinel off-diagonal cells at all times.
//   - SetOrder grows by padding with the sentinel and shrinks by dropping every
//     edge that touches a removed vertex.
//   - Order never exceeds MaxOrder. New and SetOrder panic past it; CheckOrder
//     tests an untrusted order first.
//
// A Graph is not safe for concurrent mutation. It is owned by whoever built it
// and handed to the caller whole.
//
// Complexity: storage is O(V²); edge queries and updates are O(1); neighbour
// enumeration is O(V).
package graph
