// Package distance implements the TSPLIB edge-weight functions.
//
// Every function maps a pair of nodes to an int32 weight. A Metric answers
// for both dimensionalities: Plane for 2D nodes, Space for 3D nodes. For maps
// the edge-weight type of an instance to its Metric.
//
//	EUC   nint(√(Δx² + Δy² [+ Δz²]))
//	MAN   nint(|Δx| + |Δy| [+ |Δz|])
//	MAX   nint(max(|Δx|, |Δy| [, |Δz|]))
//	CEIL  ⌈√(Δx² + Δy² [+ Δz²])⌉
//	GEO   great-circle distance in km on the TSPLIB idealized sphere; z ignored
//
// nint rounds half away from zero.
package distance
