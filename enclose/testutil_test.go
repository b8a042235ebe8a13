// Package enclose_test provides helpers shared across *_test.go files in
// this package: point generators, a brute-force reference and containment checks.
package enclose_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mincircle/geom"
	"github.com/katalvlaran/mincircle/predicates"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny is the tolerance for values the algorithm reproduces exactly
	// up to a few roundings (small integer inputs).
	epsTiny = 1e-12

	// epsRel is the relative tolerance for comparing circles obtained along
	// different computation paths.
	epsRel = 1e-9

	// seedDet is a fixed non-zero seed for reproducible runs.
	seedDet = int64(42)
)

// -----------------------------------------------------------------------------
// Generators
// -----------------------------------------------------------------------------

// newTestRand returns the deterministic generator used for test inputs.
func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(seedDet))
}

// randomPoints returns n points uniformly distributed in [-span, span]².
func randomPoints(rng *rand.Rand, n int, span float64) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.NewPoint((rng.Float64()*2-1)*span, (rng.Float64()*2-1)*span)
	}
	return pts
}

// pointsOnCircle returns n points evenly spaced on the given circle.
func pointsOnCircle(c geom.Circle, n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geom.NewPoint(c.Center.X+c.Radius*math.Cos(th), c.Center.Y+c.Radius*math.Sin(th))
	}
	return pts
}

// shuffled returns a permuted copy of pts.
func shuffled(pts []geom.Point, seed int64) []geom.Point {
	out := append([]geom.Point(nil), pts...)
	rand.New(rand.NewSource(seed)).Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// -----------------------------------------------------------------------------
// Reference and assertions
// -----------------------------------------------------------------------------

// coversAll reports whether every point lies within c up to a slack
// relative to the radius and to the magnitude of the coordinates.
func coversAll(c geom.Circle, pts []geom.Point) bool {
	slack := epsRel*(c.Radius+math.Max(math.Abs(c.Center.X), math.Abs(c.Center.Y))) + epsTiny
	for _, p := range pts {
		if geom.Distance(c.Center, p) > c.Radius+slack {
			return false
		}
	}
	return true
}

// coversTight is coversAll without the magnitude term, for reference
// circles that must not undercut the true answer.
func coversTight(c geom.Circle, pts []geom.Point) bool {
	for _, p := range pts {
		if geom.Distance(c.Center, p) > c.Radius*(1+epsRel)+epsTiny {
			return false
		}
	}
	return true
}

// bruteForce returns the smallest circle among all diametral circles of
// pairs and circumcircles of triples that covers every point. O(n⁴).
func bruteForce(pts []geom.Point) geom.Circle {
	switch len(pts) {
	case 0:
		return geom.CircleFromPoint(geom.Origin)
	case 1:
		return geom.CircleFromPoint(pts[0])
	}

	best := geom.Circle{Radius: math.Inf(1)}
	consider := func(c geom.Circle) {
		if c.Radius < best.Radius && coversTight(c, pts) {
			best = c
		}
	}
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			consider(geom.CircleFromTwoPoints(pts[i], pts[j]))
			for k := j + 1; k < len(pts); k++ {
				if c, err := predicates.CircleFromThreePoints(pts[i], pts[j], pts[k]); err == nil {
					consider(c)
				}
			}
		}
	}
	return best
}

// requireSameCircle fails unless a and b agree within epsRel, scaled by the
// magnitude of the circle.
func requireSameCircle(t *testing.T, want, got geom.Circle, msgAndArgs ...interface{}) {
	t.Helper()
	scale := math.Max(1, want.Radius+math.Max(math.Abs(want.Center.X), math.Abs(want.Center.Y)))
	require.InDelta(t, want.Radius, got.Radius, epsRel*scale, msgAndArgs...)
	require.InDelta(t, want.Center.X, got.Center.X, epsRel*scale, msgAndArgs...)
	require.InDelta(t, want.Center.Y, got.Center.Y, epsRel*scale, msgAndArgs...)
}
