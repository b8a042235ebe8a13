package predicates

import (
	"math"

	"github.com/katalvlaran/mincircle/geom"
)

// InCircle classifies p against circle.
//
// The comparison is relative, so it behaves the same whether coordinates are
// around 1e-6 or 1e9:
//
//	d    = Distance(circle.Center, p)
//	band = tol·r + MagnitudeSlack·max(|cx|, |cy|, |px|, |py|)
//	d >  r + band  ⇒ Outside
//	d >= r − band  ⇒ OnBoundary
//	otherwise      ⇒ Inside
//
// The radius term absorbs the error of a constructed circle, which grows
// with its size; the coordinate term absorbs the rounding of coordinates far
// from the origin, a few ulps of the largest one.
// tol <= 0 selects DefaultTolerance. A NaN distance is reported as Outside.
func InCircle(circle geom.Circle, p geom.Point, tol float64) Location {
	if !(tol > 0) {
		tol = DefaultTolerance
	}

	d := geom.Distance(circle.Center, p)
	r := circle.Radius
	mag := math.Max(
		math.Max(math.Abs(circle.Center.X), math.Abs(circle.Center.Y)),
		math.Max(math.Abs(p.X), math.Abs(p.Y)),
	)
	band := tol*r + MagnitudeSlack*mag

	switch {
	case d > r+band || math.IsNaN(d):
		return Outside
	case d >= r-band:
		return OnBoundary
	default:
		return Inside
	}
}

// Contains reports whether p is inside or on circle.
func Contains(circle geom.Circle, p geom.Point, tol float64) bool {
	return InCircle(circle, p, tol) != Outside
}

// InCircumcircle classifies d against the circle through a, b and c without
// constructing it. The answer does not depend on the winding of a, b, c.
//
// The float64 determinant
//
//	| adx ady adx²+ady² |
//	| bdx bdy bdx²+bdy² |   (xdx = x.X − d.X, …)
//	| cdx cdy cdx²+cdy² |
//
// is accepted when it exceeds iccErrBoundA times its permanent; otherwise it
// is recomputed exactly with math/big. OnBoundary means exactly cocircular.
//
// Errors:
//   - ErrCollinear if a, b, c are collinear (no circle passes through them).
func InCircumcircle(a, b, c, d geom.Point) (Location, error) {
	orient := Orient2D(a, b, c)
	if orient == Collinear {
		return Outside, ErrCollinear
	}

	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	bdxcdy, cdxbdy := bdx*cdy, cdx*bdy
	cdxady, adxcdy := cdx*ady, adx*cdy
	adxbdy, bdxady := adx*bdy, bdx*ady

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)
	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*alift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*blift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*clift
	errBound := iccErrBoundA*permanent + math.SmallestNonzeroFloat64

	var sign int
	switch {
	case det > errBound:
		sign = 1
	case -det > errBound:
		sign = -1
	case !d.IsFinite():
		return Outside, nil
	default:
		sign = exactInCircle(a, b, c, d)
	}

	switch sign * int(orient) {
	case 1:
		return Inside, nil
	case 0:
		return OnBoundary, nil
	default:
		return Outside, nil
	}
}
