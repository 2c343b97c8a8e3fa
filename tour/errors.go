// SPDX-License-Identifier: MIT

package tour

import "errors"

var (
	// ErrIncompleteGraph indicates that no closed tour exists over the stops.
	ErrIncompleteGraph = errors.New("tour: no closed tour over the graph")

	// ErrInvalidTour indicates a slice that is not a closed tour of the graph's stops.
	ErrInvalidTour = errors.New("tour: invalid tour")

	// ErrTooFewStops indicates a graph with fewer than two stops.
	ErrTooFewStops = errors.New("tour: fewer than two stops")

	// ErrTooManyStops indicates a graph too large for Exact.
	ErrTooManyStops = errors.New("tour: too many stops for exact search")
)
