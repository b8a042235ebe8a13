package geom

import (
	"fmt"
	"math"
)

// Point is a location on the 2D plane.
type Point struct {
	X float64
	Y float64
}

// NewPoint returns Point{X: x, Y: y}.
func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// Origin is the sentinel center returned for an empty input.
var Origin = Point{}

// IsFinite reports whether both coordinates are neither NaN nor ±Inf.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Scale returns p with both coordinates multiplied by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Circle is the set of points within Radius of Center.
//
// Invariant: Radius >= 0. Radius == 0 denotes a circle collapsed to Center.
type Circle struct {
	Center Point
	Radius float64
}

// IsDegenerate reports whether c has collapsed to a single point.
func (c Circle) IsDegenerate() bool {
	return c.Radius == 0
}

func (c Circle) String() string {
	return fmt.Sprintf("circle{center=%v r=%g}", c.Center, c.Radius)
}
