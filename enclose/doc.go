// Package enclose computes the smallest circle enclosing a finite set of 2D
// points.
//
// 🚀 What is the smallest enclosing circle?
//
//	The unique circle of minimum radius containing every input point. It is
//	used for bounding volumes in collision detection, cluster extents, and
//	1-center facility location.
//
// ✨ Key features:
//   - Welzl's randomized incremental algorithm, iterative form: O(n) expected
//   - seedable permutation (Options.Seed) for reproducible runs
//   - robust decisions via package predicates: exact orientation, relative
//     containment tolerance, explicit collinear fallback
//   - boundary set and work counters on demand (Enclose)
//   - concurrent batches of independent sets (EncloseAll)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mincircle/enclose"
//
//	circle, err := enclose.MinEnclosingCircle(points, nil)
//
//	opts := enclose.DefaultOptions()
//	opts.Seed = 42 // reproducible permutation
//	res, err := enclose.Enclose(points, &opts)
//	// res.Circle, res.Support (2..3 boundary points), res.Stats
//
// Edge cases:
//   - no points ⇒ zero-radius circle at geom.Origin (check len(points) to
//     tell it apart from a real single-point result)
//   - one point, duplicates, collinear input ⇒ handled, never an error
//   - NaN / ±Inf coordinates ⇒ ErrNonFinite
//
// Concurrency:
//
//	Every call owns its copy of the input and its random source; concurrent
//	calls share nothing. A computation is not cancellable once started;
//	apply timeouts around the call.
package enclose
