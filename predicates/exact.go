package predicates

import (
	"math/big"

	"github.com/katalvlaran/mincircle/geom"
)

// newBigFloat returns a big.Float with maximum precision. Sums, differences
// and products of float64 values are then represented without rounding.
func newBigFloat() *big.Float { return new(big.Float).SetPrec(big.MaxPrec) }

// bigSub returns the exact value of x - y.
func bigSub(x, y float64) *big.Float {
	bx := newBigFloat().SetFloat64(x)
	by := newBigFloat().SetFloat64(y)
	return bx.Sub(bx, by)
}

// bigMul returns the exact product of its arguments as a fresh value.
func bigMul(fs ...*big.Float) *big.Float {
	z := newBigFloat().SetInt64(1)
	for _, f := range fs {
		z.Mul(z, f)
	}
	return z
}

// exactOrient evaluates (a-c)×(b-c) exactly and returns its sign.
func exactOrient(a, b, c geom.Point) Orientation {
	acx := bigSub(a.X, c.X)
	bcy := bigSub(b.Y, c.Y)
	acy := bigSub(a.Y, c.Y)
	bcx := bigSub(b.X, c.X)

	left := bigMul(acx, bcy)
	right := bigMul(acy, bcx)

	return Orientation(left.Sub(left, right).Sign())
}

// exactInCircle evaluates the in-circle determinant of (a, b, c; d) exactly
// and returns its sign. Positive means d is inside when a, b, c is Left.
func exactInCircle(a, b, c, d geom.Point) int {
	adx, ady := bigSub(a.X, d.X), bigSub(a.Y, d.Y)
	bdx, bdy := bigSub(b.X, d.X), bigSub(b.Y, d.Y)
	cdx, cdy := bigSub(c.X, d.X), bigSub(c.Y, d.Y)

	lift := func(x, y *big.Float) *big.Float {
		l := bigMul(x, x)
		return l.Add(l, bigMul(y, y))
	}
	cross := func(x1, y1, x2, y2 *big.Float) *big.Float {
		l := bigMul(x1, y2)
		return l.Sub(l, bigMul(y1, x2))
	}

	det := bigMul(lift(adx, ady), cross(bdx, bdy, cdx, cdy))
	det.Add(det, bigMul(lift(bdx, bdy), cross(cdx, cdy, adx, ady)))
	det.Add(det, bigMul(lift(cdx, cdy), cross(adx, ady, bdx, bdy)))

	return det.Sign()
}
