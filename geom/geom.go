package geom

import "math"

// Distance returns the Euclidean distance between a and b.
// math.Hypot keeps the intermediate square from overflowing for huge
// coordinates; differences that overflow are taken on the halved points.
func Distance(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	if (math.IsInf(dx, 0) || math.IsInf(dy, 0)) && a.IsFinite() && b.IsFinite() {
		return 2 * math.Hypot(a.X/2-b.X/2, a.Y/2-b.Y/2)
	}
	return math.Hypot(dx, dy)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{
		X: a.X/2 + b.X/2,
		Y: a.Y/2 + b.Y/2,
	}
}

// CircleFromPoint returns the zero-radius circle at p.
func CircleFromPoint(p Point) Circle {
	return Circle{Center: p, Radius: 0}
}

// CircleFromTwoPoints returns the circle having segment ab as its diameter.
// Identical points give a zero-radius circle.
func CircleFromTwoPoints(a, b Point) Circle {
	return Circle{
		Center: Midpoint(a, b),
		Radius: Distance(a, b) / 2,
	}
}
