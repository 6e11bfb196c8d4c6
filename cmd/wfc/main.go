// Command wfc generates, checks and renders Wave Function Collapse grids.
//
//	wfc fixtures                 write the default pattern and neighbor files
//	wfc generate --live          run one grid, drawing every step
//	wfc batch --count 32         run derived-seed grids in parallel
//	wfc watch                    regenerate whenever a fixture file changes
//	wfc check --grid out.json    re-verify a saved grid
//	wfc config                   print the effective configuration
//
// Settings come from --config (YAML) over the built-in defaults; flags given
// on the command line win over both.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wfc/internal/config"
	"github.com/katalvlaran/wfc/internal/driver"
	"github.com/katalvlaran/wfc/internal/logging"
	"github.com/katalvlaran/wfc/internal/metrics"
	"github.com/katalvlaran/wfc/internal/telemetry"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// app is the ambient stack of one command invocation.
type app struct {
	cfg      config.Config
	log      *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
	shutdown telemetry.Shutdown
}

// setup resolves the configuration for cmd and starts logging, metrics and
// tracing. The caller must close the returned app.
func setup(cmd *cobra.Command) (*app, error) {
	cfg := config.Default()
	if flags.config != "" {
		var err error
		if cfg, err = config.Load(flags.config); err != nil {
			return nil, err
		}
	}
	flags.apply(cmd.Flags(), &cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lc, err := cfg.LoggerConfig()
	if err != nil {
		return nil, err
	}
	lc.Output = cmd.ErrOrStderr()
	log := logging.New(lc)

	tp, shutdown, err := telemetry.Setup(telemetry.Config{
		Exporter:       cfg.Trace,
		ServiceVersion: version,
		Output:         cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		log:      log,
		metrics:  metrics.New(),
		tracer:   telemetry.Tracer(tp),
		shutdown: shutdown,
	}, nil
}

// runner loads the fixtures and returns a Runner wired to the app.
func (a *app) runner() (*driver.Runner, error) {
	store, err := driver.LoadStore(a.cfg)
	if err != nil {
		return nil, err
	}
	if !store.Symmetric() {
		a.log.Warn("compatibility tables are asymmetric", "pairs", len(store.Asymmetries()))
	}

	return &driver.Runner{
		Config:  a.cfg,
		Store:   store,
		Log:     a.log,
		Metrics: a.metrics,
		Tracer:  a.tracer,
		Color:   flags.color,
	}, nil
}

// close flushes spans and writes the metrics textfile.
func (a *app) close(ctx context.Context) {
	if err := a.shutdown(context.WithoutCancel(ctx)); err != nil {
		a.log.Warn("trace shutdown", "err", err)
	}
	if a.cfg.MetricsFile == "" {
		return
	}
	if err := a.metrics.WriteTextfile(a.cfg.MetricsFile); err != nil {
		a.log.Error("write metrics", "path", a.cfg.MetricsFile, "err", err)
	}
}

func report(cmd *cobra.Command, res driver.Result) {
	fmt.Fprintf(cmd.OutOrStdout(), "run %s seed %d: %d steps, %d contradictions, collapsed %t, %d patterns used\n",
		res.RunID, res.Seed, res.Steps, res.Contradictions, res.Collapsed, len(res.Summary.Patterns()))
}
