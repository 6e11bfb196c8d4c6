// Package driver runs wfc generations for the command-line tool.
//
// A Runner turns a config.Config and a compat.Store into engine runs and
// carries the ambient stack around them: a run_id per generation, slog
// records, Prometheus collectors, one OpenTelemetry span per run, optional
// live frames, and the JSON grid file written at the end.
//
// The engine is generic over the coordinate type; the Runner picks vec.Vec2
// or vec.Vec3 from Config.Dimension.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/wfc/analysis"
	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/internal/config"
	"github.com/katalvlaran/wfc/internal/logging"
	"github.com/katalvlaran/wfc/internal/metrics"
	"github.com/katalvlaran/wfc/render"
	"github.com/katalvlaran/wfc/vec"
	"github.com/katalvlaran/wfc/wfc"
)

var (
	// ErrDimension indicates a configuration the driver cannot instantiate.
	ErrDimension = errors.New("driver: unsupported dimension")
	// ErrNoStore indicates a Runner without a compatibility store.
	ErrNoStore = errors.New("driver: no compatibility store")
)

// Runner executes generations for one configuration.
// Log, Metrics and Tracer may be nil.
type Runner struct {
	Config  config.Config
	Store   *compat.Store
	Log     *slog.Logger
	Metrics *metrics.Metrics
	Tracer  trace.Tracer

	// Color styles rendered frames with lipgloss.
	Color bool
	// Live, when set, receives a frame after every step, paced by Config.Interval.
	Live io.Writer
}

// Result describes one finished (or interrupted) generation. It is also the
// JSON grid file format.
type Result struct {
	RunID          string        `json:"run_id"`
	Seed           int64         `json:"seed"`
	Dimension      int           `json:"dimension"`
	Extents        []int         `json:"extents"`
	Steps          int           `json:"steps"`
	Contradictions int           `json:"contradictions"`
	Collapsed      bool          `json:"collapsed"`
	Duration       time.Duration `json:"duration_ns"`
	States         []int         `json:"states"`

	Summary analysis.Summary `json:"-"`
	Frame   string           `json:"-"`
}

// LoadStore reads the fixture files named by cfg. A missing pattern file is
// synthesized, and written back unless cfg.StrictFiles is set.
func LoadStore(cfg config.Config) (*compat.Store, error) {
	var opts []compat.Option
	if cfg.StrictSymmetry {
		opts = append(opts, compat.WithStrictSymmetry())
	}
	if cfg.StrictFiles {
		opts = append(opts, compat.WithoutPersist())
	}

	return compat.Load(cfg.Dimension, cfg.Patterns, cfg.Neighbors, opts...)
}

func (r *Runner) log() *slog.Logger {
	if r.Log == nil {
		return logging.Nop()
	}
	return r.Log
}

func (r *Runner) tracer() trace.Tracer {
	if r.Tracer == nil {
		return noop.NewTracerProvider().Tracer("")
	}
	return r.Tracer
}

// Generate runs one grid to completion with the configured seed and writes
// Config.Output when set. Cancelling ctx stops the run between steps; the
// partial Result is returned with ctx's error.
func (r *Runner) Generate(ctx context.Context) (Result, error) {
	return r.generate(ctx, r.Config.Seed, r.Config.Output, r.Live)
}

func (r *Runner) generate(ctx context.Context, seed int64, out string, live io.Writer) (Result, error) {
	s, err := r.open(ctx, seed, live != nil)
	if err != nil {
		return Result{}, err
	}

	var runErr error
	for {
		done, err := s.step()
		if live != nil {
			if _, werr := fmt.Fprintf(live, "%s\n\n", s.frame()); werr != nil && err == nil {
				err = werr
			}
		}
		if err != nil {
			runErr = err
			break
		}
		if done {
			break
		}
		if err = pace(ctx, r.Config.Interval, live != nil); err != nil {
			runErr = err
			break
		}
	}

	res := s.finish(runErr)
	if out != "" {
		if err := WriteGrid(out, res); err != nil && runErr == nil {
			runErr = err
		}
	}

	return res, runErr
}

// pace waits d between live frames and reports ctx cancellation.
func pace(ctx context.Context, d time.Duration, live bool) error {
	if !live || d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// session is one engine run seen through a dimension-independent interface.
type session interface {
	step() (done bool, err error)
	frame() string
	progress() (steps, remaining, cells int)
	finish(err error) Result
}

// textRenderer is a renderer that can print itself.
type textRenderer[V vec.Vector[V]] interface {
	render.Renderer[V]
	String() string
}

func (r *Runner) open(ctx context.Context, seed int64, live bool) (session, error) {
	if r.Store == nil {
		return nil, ErrNoStore
	}
	ext := r.Config.Extents
	var ropts []render.Option
	if r.Color {
		ropts = append(ropts, render.WithColor())
	}

	switch {
	case r.Config.Dimension == 2 && len(ext) == 2:
		rend, err := render.NewText2D(r.Store, ropts...)
		if err != nil {
			return nil, err
		}
		return newRun[vec.Vec2](ctx, r, vec.V2(ext[0], ext[1]), seed, rend, live)
	case r.Config.Dimension == 3 && len(ext) == 3:
		rend, err := render.NewText3D(r.Store, ropts...)
		if err != nil {
			return nil, err
		}
		return newRun[vec.Vec3](ctx, r, vec.V3(ext[0], ext[1], ext[2]), seed, rend, live)
	default:
		return nil, fmt.Errorf("%w: %d with %d extents", ErrDimension, r.Config.Dimension, len(ext))
	}
}

// run is the session of one Engine[V].
type run[V vec.Vector[V]] struct {
	r      *Runner
	engine *wfc.Engine[V]
	rend   textRenderer[V]
	live   bool
	log    *slog.Logger
	span   trace.Span
	res    Result
	start  time.Time
	dead   int
}

func newRun[V vec.Vector[V]](ctx context.Context, r *Runner, ext V, seed int64, rend textRenderer[V], live bool) (*run[V], error) {
	e, err := wfc.New(r.Store, ext, wfc.Options{
		BoundaryConstraint:  r.Config.Boundary,
		Seed:                seed,
		FailOnContradiction: r.Config.FailOnContradiction,
	})
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	_, span := r.tracer().Start(ctx, "wfc.run", trace.WithAttributes(
		attribute.String("wfc.run_id", id),
		attribute.Int64("wfc.seed", seed),
		attribute.Int("wfc.dimension", ext.Dim()),
		attribute.Int("wfc.cells", e.Len()),
		attribute.Int("wfc.patterns", r.Store.Len()),
	))

	s := &run[V]{
		r:      r,
		engine: e,
		rend:   rend,
		live:   live,
		log:    r.log().With("run_id", id),
		span:   span,
		start:  time.Now(),
		res: Result{
			RunID:     id,
			Seed:      seed,
			Dimension: ext.Dim(),
			Extents:   append([]int(nil), r.Config.Extents...),
		},
	}
	if live {
		if err := rend.Render(e.Snapshot(), nil); err != nil {
			span.End()
			return nil, err
		}
	}
	s.log.Info("run started", "seed", seed, "extents", fmt.Sprint(ext), "patterns", r.Store.Len())

	return s, nil
}

func (s *run[V]) step() (bool, error) {
	if s.engine.IsCollapsed() {
		return true, nil
	}

	t0 := time.Now()
	coords, err := s.engine.Iterate()
	dead := len(s.engine.Contradictions())
	s.r.Metrics.ObserveStep(time.Since(t0), len(coords), dead-s.dead)
	if dead > s.dead {
		s.log.Warn("contradiction", "step", s.engine.Steps(), "cells", dead-s.dead)
	}
	s.dead = dead
	s.log.Debug("step", "step", s.engine.Steps(), "determined", len(coords), "remaining", s.engine.Remaining())

	if s.live && len(coords) > 0 {
		if rerr := s.rend.Render(s.engine.Snapshot(), coords); rerr != nil {
			return true, rerr
		}
	}
	if err != nil {
		return true, err
	}

	return s.engine.IsCollapsed(), nil
}

func (s *run[V]) frame() string { return s.rend.String() }

func (s *run[V]) progress() (int, int, int) {
	return s.engine.Steps(), s.engine.Remaining(), s.engine.Len()
}

func (s *run[V]) finish(err error) Result {
	snap := s.engine.Snapshot()
	if !s.live {
		_ = s.rend.Render(snap, nil)
	}

	res := s.res
	res.Steps = s.engine.Steps()
	res.Contradictions = len(s.engine.Contradictions())
	res.Collapsed = s.engine.IsCollapsed()
	res.Duration = time.Since(s.start)
	res.States = snap.States()
	res.Summary = analysis.Summarize(snap)
	res.Frame = s.rend.String()

	outcome := resultLabel(res, err)
	s.r.Metrics.ObserveRun(outcome)
	s.span.SetAttributes(
		attribute.Int("wfc.steps", res.Steps),
		attribute.Int("wfc.contradictions", res.Contradictions),
		attribute.String("wfc.result", outcome),
	)
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
		s.log.Error("run stopped", "err", err, "steps", res.Steps, "remaining", s.engine.Remaining())
	} else {
		s.log.Info("run finished", "steps", res.Steps, "contradictions", res.Contradictions, "duration", res.Duration)
	}
	s.span.End()

	return res
}

func resultLabel(res Result, err error) string {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.ResultCancelled
	case errors.Is(err, wfc.ErrContradiction):
		return metrics.ResultContradiction
	case err != nil:
		return metrics.ResultError
	case res.Contradictions > 0:
		return metrics.ResultContradiction
	default:
		return metrics.ResultCollapsed
	}
}
