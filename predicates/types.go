package predicates

import "github.com/pkg/errors"

// ErrCollinear indicates that three points do not determine a circle.
var ErrCollinear = errors.New("predicates: points are collinear")

// ErrUnrepresentable indicates that three non-collinear points have a
// circumcircle whose center does not fit in float64.
var ErrUnrepresentable = errors.New("predicates: circumcenter out of float64 range")

// DefaultTolerance is the containment tolerance, relative to the radius,
// used by InCircle when the caller passes tol <= 0.
const DefaultTolerance = 1e-10

// MagnitudeSlack scales the largest coordinate magnitude involved in an
// InCircle test into an absolute allowance (64 units of roundoff).
const MagnitudeSlack = 64 * epsilon

const (
	// epsilon is half an ulp of 1.0 (2^-53), the unit roundoff of float64.
	epsilon = 1.1102230246251565e-16

	// ccwErrBoundA bounds the absolute error of the float64 orientation
	// determinant relative to |detLeft|+|detRight|.
	ccwErrBoundA = (3.0 + 16.0*epsilon) * epsilon

	// iccErrBoundA bounds the absolute error of the float64 in-circle
	// determinant relative to its permanent.
	iccErrBoundA = (10.0 + 96.0*epsilon) * epsilon
)

// Orientation is the turn direction of an ordered triple of points.
type Orientation int

const (
	// Right means a → b → c turns clockwise.
	Right Orientation = -1
	// Collinear means the three points lie on one line.
	Collinear Orientation = 0
	// Left means a → b → c turns counter-clockwise.
	Left Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Right:
		return "right"
	case Collinear:
		return "collinear"
	case Left:
		return "left"
	default:
		return "orientation(?)"
	}
}

// Location is the position of a point relative to a circle.
type Location int

const (
	// Inside means strictly within the circle, beyond the tolerance band.
	Inside Location = iota
	// OnBoundary means within the tolerance band of the circle.
	OnBoundary
	// Outside means strictly outside, beyond the tolerance band.
	Outside
)

func (l Location) String() string {
	switch l {
	case Inside:
		return "inside"
	case OnBoundary:
		return "on-boundary"
	case Outside:
		return "outside"
	default:
		return "location(?)"
	}
}
