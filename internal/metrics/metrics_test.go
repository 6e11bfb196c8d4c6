package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/internal/metrics"
)

func TestObserve(t *testing.T) {
	m := metrics.New()
	m.ObserveStep(3*time.Millisecond, 5, 0)
	m.ObserveStep(time.Millisecond, 2, 1)
	m.ObserveRun(metrics.ResultCollapsed)
	m.ObserveRun(metrics.ResultCollapsed)
	m.ObserveRun(metrics.ResultCancelled)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Iterations))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.CellsCollapsed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Contradictions))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Runs.WithLabelValues(metrics.ResultCollapsed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues(metrics.ResultCancelled)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.IterationDuration))
}

func TestNilReceiver(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveStep(time.Second, 1, 1)
		m.ObserveRun(metrics.ResultError)
	})
}

func TestIndependentRegistries(t *testing.T) {
	a, b := metrics.New(), metrics.New()
	a.ObserveStep(0, 1, 0)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Iterations))
}

func TestWriteTextfile(t *testing.T) {
	m := metrics.New()
	m.ObserveStep(time.Millisecond, 4, 0)
	m.ObserveRun(metrics.ResultCollapsed)

	path := filepath.Join(t.TempDir(), "wfc.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "wfc_iterations_total 1")
	assert.Contains(t, out, "wfc_cells_collapsed_total 4")
	assert.Contains(t, out, `wfc_runs_total{result="collapsed"} 1`)
	assert.Contains(t, out, "wfc_iteration_duration_seconds_bucket")
}
