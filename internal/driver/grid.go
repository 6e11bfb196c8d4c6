package driver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/wfc/analysis"
	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/vec"
	"github.com/katalvlaran/wfc/wfc"
)

// WriteGrid stores res as indented JSON, creating parent directories.
func WriteGrid(path string, res Result) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("driver: create %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(res, "", "\t")
	if err != nil {
		return fmt.Errorf("driver: encode grid: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// ReadGrid loads a grid written by WriteGrid.
func ReadGrid(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("driver: read %s: %w", path, err)
	}
	var res Result
	if err = json.Unmarshal(data, &res); err != nil {
		return Result{}, fmt.Errorf("driver: decode %s: %w", path, err)
	}

	return res, nil
}

// Report is the outcome of CheckGrid.
type Report struct {
	Violations int
	Regions    int
	Summary    analysis.Summary
	// First lists up to ten violations as text.
	First []string
}

// Sound reports whether no adjacent pair violates the store.
func (r Report) Sound() bool { return r.Violations == 0 }

// CheckGrid re-verifies a saved grid against store and counts its regions.
func CheckGrid(store *compat.Store, res Result) (Report, error) {
	if store == nil {
		return Report{}, ErrNoStore
	}
	switch {
	case res.Dimension == 2 && len(res.Extents) == 2:
		return checkGrid(store, vec.V2(res.Extents[0], res.Extents[1]), res.States)
	case res.Dimension == 3 && len(res.Extents) == 3:
		return checkGrid(store, vec.V3(res.Extents[0], res.Extents[1], res.Extents[2]), res.States)
	default:
		return Report{}, fmt.Errorf("%w: %d with %d extents", ErrDimension, res.Dimension, len(res.Extents))
	}
}

func checkGrid[V vec.Vector[V]](store *compat.Store, ext V, states []int) (Report, error) {
	snap, err := wfc.SnapshotFromStates(ext, states)
	if err != nil {
		return Report{}, err
	}
	for _, id := range states {
		if id >= store.Len() {
			return Report{}, fmt.Errorf("%w: %d", wfc.ErrUnknownPattern, id)
		}
	}

	violations, err := analysis.Verify(snap, store)
	if err != nil {
		return Report{}, err
	}
	regions, err := analysis.Regions(snap, store)
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		Violations: len(violations),
		Regions:    len(regions),
		Summary:    analysis.Summarize(snap),
	}
	for i, v := range violations {
		if i == 10 {
			break
		}
		rep.First = append(rep.First, fmt.Sprintf("%v=%d does not admit %v=%d on %s",
			v.At, v.State, v.Neighbor, v.NeighborState, v.Axis))
	}

	return rep, nil
}
