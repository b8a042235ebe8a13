// Package mincircle computes the smallest circle enclosing a set of 2D
// points, together with the robust geometric predicates the computation
// relies on.
//
// 🚀 What is mincircle?
//
//	A small, dependency-light library for the minimum enclosing circle
//	problem (1-center problem). Given n points it returns the unique
//	circle of minimum radius containing all of them, in expected O(n) time.
//
// ✨ Why choose mincircle?
//
//   - Robust – exact orientation (adaptive float filter, math/big fallback),
//     relative containment tolerance, explicit collinear handling
//   - Reproducible – seedable permutation, per-set streams in batches
//   - Total – empty, single-point, duplicate and collinear inputs all
//     produce a result; only non-finite coordinates are rejected
//   - Concurrent – EncloseAll spreads independent sets over a worker pool
//
// Under the hood, everything is organized under three subpackages:
//
//	geom/       — Point and Circle value types, distance, 1- and 2-point circles
//	predicates/ — Orient2D, InCircle, InCircumcircle, CircleFromThreePoints
//	enclose/    — iterative Welzl: MinEnclosingCircle, Enclose, EncloseAll
//
// Quick example:
//
//	pts := []geom.Point{geom.NewPoint(1, 0), geom.NewPoint(0, 1),
//		geom.NewPoint(-1, 0), geom.NewPoint(0, -1)}
//	c, err := enclose.MinEnclosingCircle(pts, nil)
//	// c.Center ≈ (0, 0), c.Radius ≈ 1
//
//	go get github.com/katalvlaran/mincircle
package mincircle
