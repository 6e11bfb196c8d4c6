// Package metrics holds the Prometheus collectors of a wfc process.
//
// Each Metrics owns its registry; the global default registry is never
// touched. WriteTextfile dumps the registry in the node_exporter textfile
// format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run results used as the "result" label of wfc_runs_total.
const (
	ResultCollapsed     = "collapsed"
	ResultContradiction = "contradiction"
	ResultCancelled     = "cancelled"
	ResultError         = "error"
)

// Metrics groups the collectors updated by the driver.
type Metrics struct {
	Registry *prometheus.Registry

	Iterations        prometheus.Counter
	CellsCollapsed    prometheus.Counter
	Contradictions    prometheus.Counter
	IterationDuration prometheus.Histogram
	Runs              *prometheus.CounterVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		Iterations: f.NewCounter(prometheus.CounterOpts{
			Name: "wfc_iterations_total",
			Help: "Collapse steps performed.",
		}),
		CellsCollapsed: f.NewCounter(prometheus.CounterOpts{
			Name: "wfc_cells_collapsed_total",
			Help: "Cells that left the frontier, including contradictions.",
		}),
		Contradictions: f.NewCounter(prometheus.CounterOpts{
			Name: "wfc_contradictions_total",
			Help: "Cells reduced to zero possibilities.",
		}),
		IterationDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wfc_iteration_duration_seconds",
			Help:    "Wall time of one collapse step.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wfc_runs_total",
			Help: "Finished runs by result.",
		}, []string{"result"}),
	}
}

// ObserveStep records one Iterate call that determined cells cells, of which
// contradictions ran out of possibilities. A nil receiver is a no-op.
func (m *Metrics) ObserveStep(d time.Duration, cells, contradictions int) {
	if m == nil {
		return
	}
	m.Iterations.Inc()
	m.CellsCollapsed.Add(float64(cells))
	m.Contradictions.Add(float64(contradictions))
	m.IterationDuration.Observe(d.Seconds())
}

// ObserveRun counts a finished run. A nil receiver is a no-op.
func (m *Metrics) ObserveRun(result string) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(result).Inc()
}

// WriteTextfile writes the registry to path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
