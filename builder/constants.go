// SPDX-License-Identifier: MIT

package builder

// Method names prefix constructor errors.
const (
	methodFromWeights     = "FromWeights"
	methodFromEdgeData    = "FromEdgeData"
	methodFromCoordinates = "FromCoordinates"
	methodEdgeList        = "EdgeList"
	methodAdjacencyList   = "AdjacencyList"
)

// listTerminator ends an edge list and separates adjacency groups.
const listTerminator = -1
