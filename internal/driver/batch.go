package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wfc/wfc"
)

// Batch runs Config.Count independent grids concurrently, at most
// Config.Workers at a time (one per CPU when 0). Grid i uses seed
// wfc.DeriveSeed(Config.Seed, i); all grids share the read-only store.
//
// When Config.Output is set it names a directory that receives
// grid-NNN.json per run. The first failing run cancels the others; results
// of finished runs are kept in index order.
func (r *Runner) Batch(ctx context.Context) ([]Result, error) {
	n := r.Config.Count
	if n < 1 {
		n = 1
	}
	workers := r.Config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	ctx, span := r.tracer().Start(ctx, "wfc.batch")
	defer span.End()
	span.SetAttributes(attribute.Int("wfc.count", n), attribute.Int("wfc.workers", workers))

	results := make([]Result, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			out := ""
			if r.Config.Output != "" {
				out = filepath.Join(r.Config.Output, fmt.Sprintf("grid-%03d.json", i))
			}
			res, err := r.generate(gctx, wfc.DeriveSeed(r.Config.Seed, uint64(i)), out, nil)
			results[i] = res
			if err != nil {
				return fmt.Errorf("grid %d: %w", i, err)
			}
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		span.RecordError(err)
	}
	r.log().Info("batch finished", "count", n, "workers", workers, "err", err)

	return results, err
}
