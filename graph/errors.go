// SPDX-License-Identifier: MIT

package graph

import "errors"

// ErrOrderTooLarge indicates an order whose adjacency matrix New refuses to allocate.
var ErrOrderTooLarge = errors.New("graph: order exceeds MaxOrder")
