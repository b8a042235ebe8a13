package predicates

import (
	"math"

	"github.com/katalvlaran/mincircle/geom"
)

// Orient2D reports the turn direction of a → b → c, i.e. the sign of the
// cross product (b−a)×(c−a).
//
// Evaluation:
//  1. detLeft = (a.x−c.x)·(b.y−c.y), detRight = (a.y−c.y)·(b.x−c.x), det = detLeft−detRight.
//  2. errBound = ccwErrBoundA·(|detLeft|+|detRight|) + the smallest subnormal,
//     the second term absorbing rounding of products that underflowed.
//  3. |det| > errBound ⇒ the float sign is the true sign.
//  4. Otherwise (including NaN from overflowing differences) the determinant
//     is recomputed exactly with math/big.
//
// Non-finite input has no orientation; Collinear is returned for it.
//
// Complexity: O(1); the exact path only runs for (nearly) collinear triples.
func Orient2D(a, b, c geom.Point) Orientation {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight

	errBound := ccwErrBoundA*(math.Abs(detLeft)+math.Abs(detRight)) + math.SmallestNonzeroFloat64
	if det > errBound || -det > errBound {
		return signOf(det)
	}

	if !a.IsFinite() || !b.IsFinite() || !c.IsFinite() {
		return Collinear
	}

	return exactOrient(a, b, c)
}

// signOf maps a float sign onto Orientation.
func signOf(v float64) Orientation {
	switch {
	case v > 0:
		return Left
	case v < 0:
		return Right
	default:
		return Collinear
	}
}
