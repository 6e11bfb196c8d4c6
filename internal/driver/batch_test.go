package driver_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/internal/driver"
	"github.com/katalvlaran/wfc/internal/metrics"
	"github.com/katalvlaran/wfc/wfc"
)

func TestBatch(t *testing.T) {
	cfg := testConfig(t)
	cfg.Count = 5
	cfg.Workers = 2
	cfg.Output = t.TempDir()
	r := newRunner(t, cfg)

	results, err := r.Batch(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 5)

	seeds := map[int64]bool{}
	for i, res := range results {
		assert.Equal(t, wfc.DeriveSeed(cfg.Seed, uint64(i)), res.Seed)
		assert.True(t, res.Collapsed)
		seeds[res.Seed] = true

		saved, err := driver.ReadGrid(filepath.Join(cfg.Output, fmt.Sprintf("grid-%03d.json", i)))
		require.NoError(t, err)
		assert.Equal(t, res.States, saved.States)
	}
	assert.Len(t, seeds, 5)
	assert.Equal(t, 5.0, testutil.ToFloat64(r.Metrics.Runs.WithLabelValues(metrics.ResultCollapsed)))
}

// TestBatch_MatchesGenerate pins batch item i to a single run with the
// derived seed.
func TestBatch_MatchesGenerate(t *testing.T) {
	cfg := testConfig(t)
	cfg.Count = 3
	results, err := newRunner(t, cfg).Batch(context.Background())
	require.NoError(t, err)

	single := cfg
	single.Seed = wfc.DeriveSeed(cfg.Seed, 2)
	res, err := newRunner(t, single).Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, res.States, results[2].States)
}

func TestBatch_Failure(t *testing.T) {
	cfg := testConfig(t)
	cfg.Extents = []int{2, 1}
	cfg.Count = 4
	cfg.FailOnContradiction = true
	r := &driver.Runner{Config: cfg, Store: deadStore(t)}

	_, err := r.Batch(context.Background())
	assert.ErrorIs(t, err, wfc.ErrContradiction)
}
