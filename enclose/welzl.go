package enclose

import (
	"github.com/katalvlaran/mincircle/geom"
	"github.com/katalvlaran/mincircle/predicates"
)

// boundary is the set of 1..3 points fixing the current candidate circle.
type boundary struct {
	pts [3]geom.Point
	n   int
}

// boundaryOf collects pts, skipping exact duplicates.
func boundaryOf(pts ...geom.Point) boundary {
	var b boundary
next:
	for _, p := range pts {
		for _, q := range b.pts[:b.n] {
			if p == q {
				continue next
			}
		}
		b.pts[b.n] = p
		b.n++
	}
	return b
}

// slice returns a fresh copy of the boundary points.
func (b boundary) slice() []geom.Point {
	out := make([]geom.Point, b.n)
	copy(out, b.pts[:b.n])
	return out
}

// solver runs the iterative Welzl procedure over an owned, already permuted
// point sequence. It keeps no state between computations beyond stats.
type solver struct {
	tol   float64
	stats Stats
}

// outside is the only containment decision the solver makes.
func (s *solver) outside(c geom.Circle, p geom.Point) bool {
	return predicates.InCircle(c, p, s.tol) == predicates.Outside
}

// solve returns the minimum enclosing circle of pts, len(pts) >= 2.
//
// Invariant: after index i the candidate is the minimum enclosing circle of
// pts[:i+1]. A point outside it must lie on the boundary of the next one.
func (s *solver) solve(pts []geom.Point) (geom.Circle, boundary) {
	circle := geom.CircleFromTwoPoints(pts[0], pts[1])
	support := boundaryOf(pts[0], pts[1])

	for i := 2; i < len(pts); i++ {
		if s.outside(circle, pts[i]) {
			s.stats.OuterRebuilds++
			circle, support = s.withOne(pts[:i], pts[i])
		}
	}

	return circle, support
}

// withOne returns the smallest circle with p on its boundary enclosing prefix.
func (s *solver) withOne(prefix []geom.Point, p geom.Point) (geom.Circle, boundary) {
	circle := geom.CircleFromTwoPoints(p, prefix[0])
	support := boundaryOf(p, prefix[0])

	for j := 1; j < len(prefix); j++ {
		if s.outside(circle, prefix[j]) {
			s.stats.InnerRebuilds++
			circle, support = s.withTwo(prefix[:j], p, prefix[j])
		}
	}

	return circle, support
}

// withTwo returns the smallest circle with p and q on its boundary enclosing prefix.
func (s *solver) withTwo(prefix []geom.Point, p, q geom.Point) (geom.Circle, boundary) {
	circle := geom.CircleFromTwoPoints(p, q)
	support := boundaryOf(p, q)

	for k := range prefix {
		if s.outside(circle, prefix[k]) {
			circle, support = s.withThree(p, q, prefix[k])
		}
	}

	return circle, support
}

// withThree returns the circumcircle of p, q, r, or for a collinear triple
// (or one whose circumcenter does not fit in float64) the widest of its three
// diametral circles, which covers the middle point.
func (s *solver) withThree(p, q, r geom.Point) (geom.Circle, boundary) {
	circle, err := predicates.CircleFromThreePoints(p, q, r)
	if err == nil {
		s.stats.ThreePointBuilds++
		return circle, boundaryOf(p, q, r)
	}

	s.stats.CollinearFallbacks++
	a, b := p, q
	widest := geom.Distance(p, q)
	if d := geom.Distance(p, r); d > widest {
		a, b, widest = p, r, d
	}
	if d := geom.Distance(q, r); d > widest {
		a, b = q, r
	}

	return geom.CircleFromTwoPoints(a, b), boundaryOf(a, b)
}
