// SPDX-License-Identifier: MIT
// Package: tsplib/builder
//
// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is. Constructors attach context with %w:
//
//	fmt.Errorf("%s: %d values: %w", methodFromWeights, n, ErrNonSquareWeights)

package builder

import "errors"

// ErrNonSquareWeights indicates that a FULL_MATRIX weight section does not hold N² values.
var ErrNonSquareWeights = errors.New("builder: weight count is not a perfect square")

// ErrMalformedEdgeList indicates EDGE_LIST data that is not an even number of
// ids followed by a single -1 terminator.
var ErrMalformedEdgeList = errors.New("builder: malformed edge list")

// ErrMalformedAdjacencyList indicates ADJ_LIST data containing values below -1.
var ErrMalformedAdjacencyList = errors.New("builder: malformed adjacency list")

// ErrOrderTooLarge indicates a payload whose node ids or group count would
// need a graph larger than graph.MaxOrder.
var ErrOrderTooLarge = errors.New("builder: graph order too large")

// ErrUnsupportedFormat indicates a recognized layout that no constructor builds.
var ErrUnsupportedFormat = errors.New("builder: unsupported format")
