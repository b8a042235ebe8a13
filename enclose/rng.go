// Package enclose - RNG utilities behind the input permutation.
//
// This file centralizes the random source that drives the shuffle.
//
// Goals:
//   - Reproducibility: Seed != 0 ⇒ identical permutations across runs and platforms.
//   - Isolation: randomness only decides processing order; the geometric code
//     never draws from it.
//   - No shared state: every call owns its *rand.Rand.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each computation creates its own.
//   - deriveSeed gives every set of a batch an independent stream.
package enclose

import (
	"math/rand"

	"github.com/katalvlaran/mincircle/geom"
)

// defaultRNGSeed replaces a derived seed that happens to collide with 0,
// which is reserved for "use the process-level source".
const defaultRNGSeed int64 = 1

// newRNG returns the source for one computation.
// Policy: seed==0 ⇒ a private stream seeded from the process-level source
// (auto-seeded, goroutine-safe); otherwise the provided seed verbatim.
//
// Complexity: O(1).
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = rand.Int63()
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed returns the seed of set number stream in an EncloseAll batch,
// so a seeded batch is reproducible whatever the scheduling order. The result
// is never 0, which newRNG reserves for an unseeded run.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) + (stream+1)*0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		return defaultRNGSeed
	}
	return int64(x)
}

// shufflePoints performs an in-place Fisher–Yates shuffle of pts using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shufflePoints(pts []geom.Point, rng *rand.Rand) {
	var (
		i int
		j int
	)
	for i = len(pts) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		pts[i], pts[j] = pts[j], pts[i]
	}
}
