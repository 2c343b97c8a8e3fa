// SPDX-License-Identifier: MIT

package tsplib

import (
	"github.com/katalvlaran/tsplib/core"
	"github.com/katalvlaran/tsplib/graph"
)

// MetaData describes an instance. A nil field was absent from the input.
type MetaData struct {
	Name    *string
	Comment *string
	Type    *core.ProblemType
}

// Content is a fully read instance.
type Content struct {
	MetaData MetaData
	Graph    *graph.Graph
}
