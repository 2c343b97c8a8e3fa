// SPDX-License-Identifier: MIT

package distance

import (
	"math"

	"github.com/katalvlaran/tsplib/core"
)

// EarthRadius is the radius of the TSPLIB idealized sphere, in kilometres.
const EarthRadius = 6378.388

// Geographical is the TSPLIB GEO distance.
// Coordinates are DDD.MM: the integral part is degrees, the fractional part minutes.
type Geographical struct{}

// Plane returns the geographical distance between a and b, X being latitude.
func (Geographical) Plane(a, b core.Node2D) int32 {
	var (
		latA, lonA = radians(a.X), radians(a.Y)
		latB, lonB = radians(b.X), radians(b.Y)
		q1         = math.Cos(lonA - lonB)
		q2         = math.Cos(latA - latB)
		q3         = math.Cos(latA + latB)
	)

	cos := math.Max(-1, math.Min(1, 0.5*((1+q1)*q2-(1-q1)*q3)))

	return int32(EarthRadius*math.Acos(cos) + 1)
}

// Space ignores the z coordinate.
func (g Geographical) Space(a, b core.Node3D) int32 {
	return g.Plane(a.Flatten(), b.Flatten())
}

// radians converts a DDD.MM coordinate.
func radians(x float64) float64 {
	deg := math.Round(x)
	minutes := x - deg

	return math.Pi * (deg + 5*minutes/3) / 180
}
