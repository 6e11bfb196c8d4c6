package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/internal/config"
	"github.com/katalvlaran/wfc/internal/driver"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestFixturesGenerateCheck(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"--patterns", filepath.Join(dir, "patterns.json"),
		"--neighbors", filepath.Join(dir, "neighbors.json"),
	}

	out, _, err := execute(t, append([]string{"fixtures"}, files...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+filepath.Join(dir, "patterns.json"))
	assert.FileExists(t, filepath.Join(dir, "neighbors.json"))

	out, _, err = execute(t, append([]string{"fixtures"}, files...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "kept ")

	grid := filepath.Join(dir, "grid.json")
	metricsFile := filepath.Join(dir, "wfc.prom")
	out, _, err = execute(t, append([]string{"generate", "--extents", "5,4", "--seed", "3",
		"--output", grid, "--metrics-file", metricsFile}, files...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "seed 3:")
	assert.Contains(t, out, "collapsed true")

	res, err := driver.ReadGrid(grid)
	require.NoError(t, err)
	assert.Len(t, res.States, 20)

	prom, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `wfc_runs_total{result="collapsed"} 1`)

	out, _, err = execute(t, append([]string{"check", "--grid", grid}, files...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "16 patterns")
	assert.Contains(t, out, "0 violations")
}

func TestCheck_Unsound(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"--patterns", filepath.Join(dir, "patterns.json"),
		"--neighbors", filepath.Join(dir, "neighbors.json"),
	}
	_, _, err := execute(t, append([]string{"fixtures"}, files...)...)
	require.NoError(t, err)

	grid := filepath.Join(dir, "bad.json")
	require.NoError(t, driver.WriteGrid(grid, driver.Result{Dimension: 2, Extents: []int{2, 1}, States: []int{2, 0}}))

	out, _, err := execute(t, append([]string{"check", "--grid", grid}, files...)...)
	assert.ErrorIs(t, err, errUnsound)
	assert.Contains(t, out, "does not admit")
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "grids")
	files := []string{
		"--patterns", filepath.Join(dir, "patterns.json"),
		"--neighbors", filepath.Join(dir, "neighbors.json"),
	}
	_, _, err := execute(t, append([]string{"fixtures"}, files...)...)
	require.NoError(t, err)

	_, _, err = execute(t, append([]string{"batch", "-n", "3", "-w", "2", "-e", "4,4", "-o", outDir}, files...)...)
	require.NoError(t, err)
	for _, name := range []string{"grid-000.json", "grid-001.json", "grid-002.json"} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}
}

func TestConfig(t *testing.T) {
	out, _, err := execute(t, "config", "--dim", "3", "--seed", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "dimension: 3")
	assert.Contains(t, out, "seed: 9")
	assert.Contains(t, out, "patterns3d.json")

	path := filepath.Join(t.TempDir(), "wfc.yaml")
	_, _, err = execute(t, "config", "--extents", "10,12", "--save", path)
	require.NoError(t, err)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 12}, cfg.Extents)

	// The saved file feeds --config; flags still win.
	out, _, err = execute(t, "config", "--config", path, "--extents", "3,3")
	require.NoError(t, err)
	assert.Contains(t, out, "- 3")
	assert.NotContains(t, out, "- 12")

	_, _, err = execute(t, "config", "--extents", "0,4")
	assert.ErrorIs(t, err, config.ErrInvalid)
}
