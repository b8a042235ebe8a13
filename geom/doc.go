// Package geom defines the value types shared by the whole module: a 2D
// Point and a Circle, plus the few pure helpers built on them.
//
// 🚀 What lives here?
//
//   - Point  — two float64 coordinates; == is exact coordinate equality.
//   - Circle — a center Point and a non-negative radius (0 ⇒ degenerate).
//   - Distance / Midpoint — Euclidean helpers, overflow-safe via math.Hypot.
//   - CircleFromPoint / CircleFromTwoPoints — circles fixed by 1 or 2 points.
//
// Circles through three points need an orientation decision and are built
// in package predicates (see predicates.CircleFromThreePoints).
//
// All functions are side-effect free and safe for concurrent use.
package geom
