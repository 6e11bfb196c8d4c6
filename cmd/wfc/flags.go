package main

import (
	"path/filepath"
	"slices"
	"time"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/wfc/internal/config"
)

// cliFlags holds the values of the persistent flags. Only flags set on the
// command line override the configuration.
type cliFlags struct {
	config string

	dimension      int
	extents        []int
	seed           int64
	boundary       bool
	failFast       bool
	patterns       string
	neighbors      string
	strictFiles    bool
	strictSymmetry bool
	output         string
	interval       time.Duration
	count          int
	workers        int

	logLevel    string
	logJSON     bool
	trace       string
	metricsFile string
	color       bool
}

var flags cliFlags

func (f *cliFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.config, "config", "c", "", "YAML configuration file")

	fs.IntVarP(&f.dimension, "dim", "d", 2, "grid dimension (2 or 3)")
	fs.IntSliceVarP(&f.extents, "extents", "e", nil, "grid extents, one per dimension (e.g. 24,16)")
	fs.Int64VarP(&f.seed, "seed", "s", 0, "random seed; 0 selects the default seed")
	fs.BoolVar(&f.boundary, "boundary", true, "treat the outside of the grid as void cells")
	fs.BoolVar(&f.failFast, "fail-on-contradiction", false, "stop at the first contradiction")
	fs.StringVar(&f.patterns, "patterns", "", "pattern table JSON (synthesized when missing)")
	fs.StringVar(&f.neighbors, "neighbors", "", "neighbor table JSON")
	fs.BoolVar(&f.strictFiles, "strict-files", false, "do not write a synthesized pattern table")
	fs.BoolVar(&f.strictSymmetry, "strict-symmetry", false, "reject asymmetric compatibility tables")
	fs.StringVarP(&f.output, "output", "o", "", "grid JSON file (a directory for batch)")
	fs.DurationVar(&f.interval, "interval", 0, "delay between live frames")
	fs.IntVarP(&f.count, "count", "n", 1, "number of grids in a batch")
	fs.IntVarP(&f.workers, "workers", "w", 0, "batch concurrency; 0 means one per CPU")

	fs.StringVar(&f.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.BoolVar(&f.logJSON, "log-json", false, "log JSON records")
	fs.StringVar(&f.trace, "trace", "none", "span exporter: none or stdout")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics here on exit")
	fs.BoolVar(&f.color, "color", false, "color rendered grids")
}

// apply copies every flag that was set onto cfg.
func (f *cliFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	set := fs.Changed

	if set("dim") && f.dimension != cfg.Dimension {
		def := config.Default()
		if cfg.Patterns == def.Patterns && !set("patterns") {
			cfg.Patterns = filepath.Join("data", "patterns"+dimSuffix(f.dimension)+".json")
		}
		if len(cfg.Extents) != f.dimension && !set("extents") {
			cfg.Extents = slices.Repeat([]int{8}, max(f.dimension, 0))
		}
		cfg.Dimension = f.dimension
	}
	if set("extents") {
		cfg.Extents = slices.Clone(f.extents)
	}
	if set("seed") {
		cfg.Seed = f.seed
	}
	if set("boundary") {
		cfg.Boundary = f.boundary
	}
	if set("fail-on-contradiction") {
		cfg.FailOnContradiction = f.failFast
	}
	if set("patterns") {
		cfg.Patterns = f.patterns
	}
	if set("neighbors") {
		cfg.Neighbors = f.neighbors
	}
	if set("strict-files") {
		cfg.StrictFiles = f.strictFiles
	}
	if set("strict-symmetry") {
		cfg.StrictSymmetry = f.strictSymmetry
	}
	if set("output") {
		cfg.Output = f.output
	}
	if set("interval") {
		cfg.Interval = f.interval
	}
	if set("count") {
		cfg.Count = f.count
	}
	if set("workers") {
		cfg.Workers = f.workers
	}
	if set("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if set("log-json") {
		cfg.Log.JSON = f.logJSON
	}
	if set("trace") {
		cfg.Trace = f.trace
	}
	if set("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
}

func dimSuffix(dim int) string {
	switch dim {
	case 3:
		return "3d"
	default:
		return "2d"
	}
}
