// Package tour computes closed tours over a TSPLIB graph.
//
// A tour is a closed walk given as a vertex slice whose first and last entries
// coincide and which visits every stop exactly once in between. The stops of a
// graph are its vertices with at least one outgoing arc, so the isolated
// vertex 0 of a 1-based instance never takes part.
//
// Algorithms:
//
//   - NearestNeighbour: greedy construction. O(V²).
//   - TwoOpt:           first-improvement segment reversal. O(V²) per pass;
//     exact on asymmetric instances because reversed segments are re-costed
//     from prefix sums.
//   - Exact:            Held–Karp dynamic programming over DistanceMatrix.
//     O(V²·2ⱽ) time, O(V·2ⱽ) memory; limited to MaxExactStops stops.
//
// Missing arcs never become part of a tour; when no tour exists the
// functions return ErrIncompleteGraph.
package tour
