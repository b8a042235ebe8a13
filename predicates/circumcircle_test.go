package predicates_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mincircle/geom"
	"github.com/katalvlaran/mincircle/predicates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsTiny = 1e-12

// TestCircleFromThreePoints_Unit checks the circumcircle of three points on
// the unit circle, in both windings.
func TestCircleFromThreePoints_Unit(t *testing.T) {
	a, b, c := geom.NewPoint(0, -1), geom.NewPoint(1, 0), geom.NewPoint(0, 1)

	for _, tri := range [][3]geom.Point{{a, b, c}, {c, b, a}, {b, a, c}} {
		circle, err := predicates.CircleFromThreePoints(tri[0], tri[1], tri[2])
		require.NoError(t, err)
		assert.InDelta(t, 0.0, circle.Center.X, epsTiny)
		assert.InDelta(t, 0.0, circle.Center.Y, epsTiny)
		assert.InDelta(t, 1.0, circle.Radius, epsTiny)
	}
}

// TestCircleFromThreePoints_RightTriangle places the center on the hypotenuse.
func TestCircleFromThreePoints_RightTriangle(t *testing.T) {
	circle, err := predicates.CircleFromThreePoints(geom.NewPoint(0, 0), geom.NewPoint(4, 0), geom.NewPoint(0, 3))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, circle.Center.X, epsTiny)
	assert.InDelta(t, 1.5, circle.Center.Y, epsTiny)
	assert.InDelta(t, 2.5, circle.Radius, epsTiny)
}

// TestCircleFromThreePoints_FarFromOrigin verifies the translated
// computation keeps precision when the triangle sits at 1e8.
func TestCircleFromThreePoints_FarFromOrigin(t *testing.T) {
	const off = 1e8
	circle, err := predicates.CircleFromThreePoints(
		geom.NewPoint(off+3, off+4), geom.NewPoint(off-4, off+3), geom.NewPoint(off+5, off),
	)
	require.NoError(t, err)
	assert.InDelta(t, off, circle.Center.X, 1e-6)
	assert.InDelta(t, off, circle.Center.Y, 1e-6)
	assert.InDelta(t, 5.0, circle.Radius, 1e-6)
}

// TestCircleFromThreePoints_CoversVertices checks that the returned radius is
// never smaller than any vertex distance.
func TestCircleFromThreePoints_CoversVertices(t *testing.T) {
	pts := []geom.Point{geom.NewPoint(0.1, 0.3), geom.NewPoint(7.7, -1.9), geom.NewPoint(-3.3, 2.2)}
	circle, err := predicates.CircleFromThreePoints(pts[0], pts[1], pts[2])
	require.NoError(t, err)
	for _, p := range pts {
		assert.LessOrEqual(t, geom.Distance(circle.Center, p), circle.Radius)
		assert.True(t, predicates.Contains(circle, p, 0))
	}
}

// TestCircleFromThreePoints_Collinear covers the tagged collinear result,
// including duplicates and exactly collinear triples of large magnitude.
func TestCircleFromThreePoints_Collinear(t *testing.T) {
	cases := [][3]geom.Point{
		{geom.NewPoint(0, 0), geom.NewPoint(1, 0), geom.NewPoint(2, 0)},
		{geom.NewPoint(1, 1), geom.NewPoint(1, 1), geom.NewPoint(3, 5)},
		{geom.NewPoint(2, 2), geom.NewPoint(2, 2), geom.NewPoint(2, 2)},
		{geom.NewPoint(1e15, 1e15), geom.NewPoint(1e15+1, 1e15+1), geom.NewPoint(1e15+7, 1e15+7)},
	}
	for _, tri := range cases {
		_, err := predicates.CircleFromThreePoints(tri[0], tri[1], tri[2])
		assert.ErrorIs(t, err, predicates.ErrCollinear, "triple %v", tri)
	}
}

// TestCircleFromThreePoints_NearlyCollinear never yields a non-finite circle.
func TestCircleFromThreePoints_NearlyCollinear(t *testing.T) {
	a, b := geom.NewPoint(0.5, 0.5), geom.NewPoint(12, 12)
	c := geom.NewPoint(24, math.Nextafter(24, math.Inf(1)))

	require.NotEqual(t, predicates.Collinear, predicates.Orient2D(a, b, c))
	circle, err := predicates.CircleFromThreePoints(a, b, c)
	if err != nil {
		assert.ErrorIs(t, err, predicates.ErrUnrepresentable)
		return
	}
	assert.True(t, circle.Center.IsFinite())
	assert.False(t, math.IsNaN(circle.Radius))
}

// TestCircleFromThreePoints_HugeCoordinates keeps the construction finite
// when squared coordinates, or even differences, exceed the float64 range.
func TestCircleFromThreePoints_HugeCoordinates(t *testing.T) {
	for _, s := range []float64{1, 1e150, 1e200, 1e308} {
		a, b, c := geom.NewPoint(s, s), geom.NewPoint(-s, s), geom.NewPoint(0, -s)
		require.Equal(t, predicates.Left, predicates.Orient2D(a, b, c), "s=%g", s)

		circle, err := predicates.CircleFromThreePoints(a, b, c)
		require.NoError(t, err, "s=%g", s)
		assert.InDelta(t, 0.0, circle.Center.X/s, epsTiny, "s=%g", s)
		assert.InDelta(t, 0.25, circle.Center.Y/s, epsTiny, "s=%g", s)
		assert.InDelta(t, 1.25, circle.Radius/s, epsTiny, "s=%g", s)
		for _, p := range []geom.Point{a, b, c} {
			assert.True(t, predicates.Contains(circle, p, 0), "s=%g vertex %v", s, p)
		}
	}
}

// TestCircleFromThreePoints_CollinearOnlyWhenOrientSaysSo checks that
// ErrCollinear is tied to Orient2D on random triples of every magnitude.
func TestCircleFromThreePoints_CollinearOnlyWhenOrientSaysSo(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		scale := math.Pow(10, float64(rng.Intn(601)-300))
		pt := func() geom.Point {
			return geom.NewPoint((rng.Float64()*2-1)*scale, (rng.Float64()*2-1)*scale)
		}
		a, b, c := pt(), pt(), pt()

		_, err := predicates.CircleFromThreePoints(a, b, c)
		if predicates.Orient2D(a, b, c) == predicates.Collinear {
			assert.ErrorIs(t, err, predicates.ErrCollinear)
			continue
		}
		assert.NotErrorIs(t, err, predicates.ErrCollinear, "triple %v %v %v", a, b, c)
	}
}
