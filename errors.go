// SPDX-License-Identifier: MIT

package tsplib

import "errors"

// ErrNoGraphData indicates that the input decoded but holds no combination of
// sections a graph can be built from.
var ErrNoGraphData = errors.New("tsplib: no graph data")
