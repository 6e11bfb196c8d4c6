// Package config loads and validates the YAML run configuration of the wfc
// binaries.
//
// A configuration names the pattern and neighbor files, the grid and the
// engine options, plus the ambient settings (logging, metrics, tracing,
// pacing). Command-line flags override file values after Load.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wfc/internal/logging"
)

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config is the root of a wfc YAML file.
type Config struct {
	// Dimension of the lattice: 2 or 3.
	Dimension int `yaml:"dimension" validate:"oneof=2 3"`
	// Extents of the grid, one positive value per dimension.
	Extents []int `yaml:"extents" validate:"required,dive,gte=1"`
	// Boundary enables the void boundary constraint.
	Boundary bool `yaml:"boundary"`
	// Seed of the engine; 0 selects the default seed.
	Seed int64 `yaml:"seed"`
	// FailOnContradiction stops a run at the first contradiction.
	FailOnContradiction bool `yaml:"fail_on_contradiction"`
	// Patterns is the pattern table path; synthesized and written when missing.
	Patterns string `yaml:"patterns" validate:"required"`
	// Neighbors is the neighbor table path. It must exist.
	Neighbors string `yaml:"neighbors" validate:"required"`
	// StrictFiles keeps a synthesized pattern table in memory instead of
	// writing it to Patterns.
	StrictFiles bool `yaml:"strict_files"`
	// StrictSymmetry rejects asymmetric compatibility tables.
	StrictSymmetry bool `yaml:"strict_symmetry"`
	// Interval paces steps when rendering live; 0 runs flat out.
	Interval time.Duration `yaml:"interval" validate:"gte=0"`
	// Count is the number of grids of a batch.
	Count int `yaml:"count" validate:"gte=1,lte=4096"`
	// Workers bounds batch concurrency; 0 means one per CPU.
	Workers int `yaml:"workers" validate:"gte=0"`
	// Output, when set, receives the final grid as JSON.
	Output string `yaml:"output"`
	// Log configures the process logger.
	Log Log `yaml:"log"`
	// MetricsFile, when set, receives the Prometheus textfile after a run.
	MetricsFile string `yaml:"metrics_file"`
	// Trace selects the span exporter: "none" or "stdout".
	Trace string `yaml:"trace" validate:"oneof=none stdout"`
}

// Log configures internal/logging.
type Log struct {
	Level string `yaml:"level" validate:"oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json"`
}

// Default returns a 2D 16×16 run over fixtures in ./data.
func Default() Config {
	return Config{
		Dimension: 2,
		Extents:   []int{16, 16},
		Boundary:  true,
		Patterns:  filepath.Join("data", "patterns2d.json"),
		Neighbors: filepath.Join("data", "neighbors.json"),
		Count:     1,
		Log:       Log{Level: "info"},
		Trace:     "none",
	}
}

var validate = validator.New()

// Validate checks field constraints and that Extents has Dimension entries.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if len(c.Extents) != c.Dimension {
		return fmt.Errorf("%w: %d extents for dimension %d", ErrInvalid, len(c.Extents), c.Dimension)
	}

	return nil
}

// LoggerConfig converts the log section for internal/logging.
func (c Config) LoggerConfig() (logging.Config, error) {
	lvl, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return logging.Config{}, err
	}

	return logging.Config{Level: lvl, JSON: c.Log.JSON, Service: "wfc"}, nil
}

// Load reads path over Default and validates the result. Unknown keys are
// rejected. A missing file is an error wrapping fs.ErrNotExist.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Save writes cfg to path as YAML, creating parent directories.
func Save(path string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}

	return os.WriteFile(path, data, 0o644)
}
