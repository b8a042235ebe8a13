package predicates

import (
	"math"

	"github.com/katalvlaran/mincircle/geom"
	"github.com/pkg/errors"
)

// CircleFromThreePoints returns the circle passing through a, b and c.
//
// The circumcenter is computed in coordinates translated to a and divided by
// s = max(|b'x|, |b'y|, |c'x|, |c'y|), so neither the squared terms nor their
// products overflow, whatever the magnitude of the input:
//
//	b' = (b − a)/s, c' = (c − a)/s, D = 2·(b'x·c'y − b'y·c'x)
//	ux = (c'y·|b'|² − b'y·|c'|²) / D
//	uy = (b'x·|c'|² − c'x·|b'|²) / D
//	center = a + s·(ux, uy)
//
// The radius is the largest of the three center-to-vertex distances, so all
// three points are covered after rounding.
//
// Errors:
//   - ErrCollinear if Orient2D(a, b, c) is Collinear.
//   - ErrUnrepresentable if the triple is not collinear but its circumcenter
//     lies outside the float64 range (extreme slivers).
//
// Either way the caller must cover the points with a two-point circle.
func CircleFromThreePoints(a, b, c geom.Point) (geom.Circle, error) {
	if Orient2D(a, b, c) == Collinear {
		return geom.Circle{}, ErrCollinear
	}

	center, ok := circumcenter(a, b, c)
	if !ok {
		return geom.Circle{}, errors.Wrapf(ErrUnrepresentable, "circumcenter of %v %v %v", a, b, c)
	}

	radius := math.Max(
		geom.Distance(center, a),
		math.Max(geom.Distance(center, b), geom.Distance(center, c)),
	)

	return geom.Circle{Center: center, Radius: radius}, nil
}

// circumcenter evaluates the scaled formula above for a non-collinear triple.
// When the differences themselves overflow, it works on the halved triple.
func circumcenter(a, b, c geom.Point) (geom.Point, bool) {
	bx, by := b.X-a.X, b.Y-a.Y
	cx, cy := c.X-a.X, c.Y-a.Y
	s := math.Max(
		math.Max(math.Abs(bx), math.Abs(by)),
		math.Max(math.Abs(cx), math.Abs(cy)),
	)
	if math.IsInf(s, 0) {
		half, ok := circumcenter(a.Scale(0.5), b.Scale(0.5), c.Scale(0.5))
		center := half.Scale(2)
		return center, ok && center.IsFinite()
	}
	if s == 0 {
		return geom.Point{}, false
	}

	bx, by, cx, cy = bx/s, by/s, cx/s, cy/s
	d := 2 * (bx*cy - by*cx)
	if d == 0 {
		return geom.Point{}, false
	}

	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	center := geom.Point{
		X: a.X + (cy*b2-by*c2)/d*s,
		Y: a.Y + (bx*c2-cx*b2)/d*s,
	}

	return center, center.IsFinite()
}
