package tour_test

import (
	"fmt"

	"github.com/katalvlaran/tsplib"
	"github.com/katalvlaran/tsplib/tour"
)

// ExampleExact solves the four corners of a 3×4 rectangle.
func ExampleExact() {
	c, err := tsplib.ReadFile("../testdata/square4.tsp")
	if err != nil {
		fmt.Println(err)
		return
	}

	t, cost, err := tour.Exact(c.Graph)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(t, cost)

	// Output:
	// [1 4 3 2 1] 14
}
