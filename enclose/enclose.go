package enclose

import (
	"github.com/katalvlaran/mincircle/geom"
	"github.com/pkg/errors"
)

// MinEnclosingCircle returns the smallest circle containing every point.
//
// Description:
//
//	Randomized incremental (Welzl) algorithm in iterative form. The input is
//	copied and shuffled; a candidate circle is grown point by point, and a
//	point found outside forces a rebuild with that point on the boundary.
//
// Algorithm Outline:
//  1. n = 0 ⇒ zero-radius circle at geom.Origin; n = 1 ⇒ zero radius at the point.
//  2. Copy and shuffle (unless opts.DisableShuffle); circle on p[0], p[1].
//  3. For i = 2..n−1, if p[i] is Outside: circle on (p[i], p[0]);
//     for j = 1..i−1, if p[j] is Outside: circle on (p[i], p[j]);
//     for k = 0..j−1, if p[k] is Outside: circumcircle of (p[i], p[j], p[k]),
//     or the widest diametral circle of the three when they are collinear.
//
// Complexity:
//
//	Time   = O(n) expected over the random permutation, O(n³) worst case.
//	Memory = O(n) for the owned copy.
//
// The caller's slice is never modified. Every returned point lies inside or
// on the circle within opts.Tolerance (see predicates.InCircle).
//
// Errors:
//   - ErrNonFinite  — a point has a NaN or infinite coordinate.
//   - ErrBadOptions — opts is invalid.
func MinEnclosingCircle(points []geom.Point, opts *Options) (geom.Circle, error) {
	res, err := Enclose(points, opts)
	if err != nil {
		return geom.Circle{}, err
	}
	return res.Circle, nil
}

// Enclose is MinEnclosingCircle returning the boundary set and work counters
// along with the circle.
func Enclose(points []geom.Point, opts *Options) (Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return Result{}, err
	}
	return enclose(points, o)
}

// enclose runs one computation with resolved options.
func enclose(points []geom.Point, o Options) (Result, error) {
	if err := validatePoints(points); err != nil {
		o.Logger.Warn("rejecting input", "points", len(points), "error", err)
		return Result{}, err
	}

	n := len(points)
	switch n {
	case 0:
		return Result{Circle: geom.CircleFromPoint(geom.Origin)}, nil
	case 1:
		return Result{
			Circle:  geom.CircleFromPoint(points[0]),
			Support: []geom.Point{points[0]},
			Stats:   Stats{Points: 1},
		}, nil
	}

	work := make([]geom.Point, n)
	copy(work, points)
	if !o.DisableShuffle {
		shufflePoints(work, newRNG(o.Seed))
	}

	s := solver{tol: o.Tolerance}
	circle, support := s.solve(work)
	s.stats.Points = n

	o.Logger.Debug("enclosing circle computed",
		"points", n,
		"radius", circle.Radius,
		"outer_rebuilds", s.stats.OuterRebuilds,
		"inner_rebuilds", s.stats.InnerRebuilds,
		"three_point_builds", s.stats.ThreePointBuilds,
		"collinear_fallbacks", s.stats.CollinearFallbacks,
	)

	return Result{
		Circle:  circle,
		Support: support.slice(),
		Stats:   s.stats,
	}, nil
}

// validatePoints rejects the first point with a non-finite coordinate.
//
// Complexity: O(n).
func validatePoints(points []geom.Point) error {
	for i, p := range points {
		if !p.IsFinite() {
			return errors.Wrapf(ErrNonFinite, "point %d is %v", i, p)
		}
	}
	return nil
}
