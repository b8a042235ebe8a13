package enclose

import (
	"log/slog"
	"math"
	"runtime"

	"github.com/katalvlaran/mincircle/predicates"
	"github.com/pkg/errors"
)

// Options configures an enclosing-circle computation.
//
// Fields:
//   - Seed           — seed of the input permutation. 0 draws a fresh seed
//     from the process-level source; any other value gives a reproducible order.
//   - DisableShuffle — process points in input order. Still correct, but an
//     adversarial order degrades the expected O(n) to O(n³).
//   - Tolerance      — containment tolerance relative to the radius, see
//     predicates.InCircle. 0 selects predicates.DefaultTolerance.
//   - Workers        — concurrency of EncloseAll; <= 0 means GOMAXPROCS.
//   - Logger         — destination of debug/warn records; nil discards them.
type Options struct {
	Seed           int64
	DisableShuffle bool
	Tolerance      float64
	Workers        int
	Logger         *slog.Logger
}

// DefaultOptions returns the options used when nil is passed.
func DefaultOptions() Options {
	return Options{
		Tolerance: predicates.DefaultTolerance,
	}
}

var discardLogger = slog.New(slog.DiscardHandler)

// resolveOptions validates opts and fills in defaults. nil ⇒ DefaultOptions().
//
// Errors:
//   - ErrBadOptions if Tolerance is negative, NaN or infinite.
func resolveOptions(opts *Options) (Options, error) {
	var o Options
	if opts == nil {
		o = DefaultOptions()
	} else {
		o = *opts
	}

	if o.Tolerance < 0 || math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) {
		return Options{}, errors.Wrapf(ErrBadOptions, "tolerance %g", o.Tolerance)
	}
	if o.Tolerance == 0 {
		o.Tolerance = predicates.DefaultTolerance
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = discardLogger
	}

	return o, nil
}

// forStream returns the options for set number stream of a batch: a
// deterministic per-set seed when Seed != 0, the process-level source otherwise.
func (o Options) forStream(stream uint64) Options {
	if o.Seed != 0 {
		o.Seed = deriveSeed(o.Seed, stream)
	}
	return o
}
