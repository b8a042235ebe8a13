package enclose

import (
	"context"

	"github.com/katalvlaran/mincircle/geom"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// EncloseAll computes the minimum enclosing circle of every set independently,
// running up to opts.Workers computations at a time.
//
// Results are returned in the order of sets. With opts.Seed != 0 every set
// is shuffled with its own stream derived from the seed and the set index,
// so the output is reproducible regardless of scheduling.
//
// ctx is checked before each set starts; a computation already running is
// not interrupted. The first failure cancels the sets not yet started.
//
// Errors:
//   - ErrBadOptions — opts is invalid.
//   - ErrNonFinite  — wrapped with the index of the offending set.
//   - ctx.Err()     — if ctx is done before all sets have started.
func EncloseAll(ctx context.Context, sets [][]geom.Point, opts *Options) ([]Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(sets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)

	for i := range sets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := enclose(sets[i], o.forStream(uint64(i)))
			if err != nil {
				return errors.Wrapf(err, "set %d", i)
			}
			results[i] = res
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		o.Logger.WarnContext(ctx, "batch failed", "sets", len(sets), "error", err)
		return nil, err
	}

	o.Logger.DebugContext(ctx, "batch completed", "sets", len(sets), "workers", o.Workers)
	return results, nil
}
