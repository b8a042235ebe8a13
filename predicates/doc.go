// Package predicates implements the geometric decisions the enclosing-circle
// algorithm depends on, evaluated so that they stay correct near degenerate
// configurations.
//
// 🚀 What is here?
//
//   - Orient2D        — turn direction of three points (Left, Right, Collinear).
//   - InCircle        — Inside / OnBoundary / Outside test of a point against
//     a Circle, with a tolerance relative to the operands' magnitude.
//   - InCircumcircle  — location of a point against the circle through three
//     other points, without constructing that circle.
//   - CircleFromThreePoints — circumcircle construction, or ErrCollinear.
//
// ✨ Robustness model:
//
//	Orient2D and InCircumcircle are adaptive. A plain float64 determinant is
//	evaluated first together with a forward error bound derived from machine
//	epsilon and the magnitude of the determinant's terms. Only when the
//	result falls inside that bound is the determinant recomputed exactly with
//	math/big. Consequently Collinear is reported iff the points are exactly
//	collinear, never because naive subtraction cancelled to zero.
//
//	InCircle is a tolerance test, not an exact one: a point whose distance to
//	the center differs from the radius by no more than
//	tol·radius + MagnitudeSlack·max|coordinate| is OnBoundary. Every containment decision
//	in this module goes through it so the classification of a point is
//	consistent across repeated evaluations.
//
// All functions are pure and safe for concurrent use.
package predicates
