// Command tspinfo prints a summary of TSPLIB instances.
//
//	tspinfo [--format text|yaml] [--verbose] [--tour] FILE...
//
// --tour adds a tour and its cost: Held–Karp up to tour.MaxExactStops stops,
// nearest neighbour refined by 2-opt above that.
//
// Flags can also be set through TSPINFO_FORMAT, TSPINFO_VERBOSE and TSPINFO_TOUR.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
