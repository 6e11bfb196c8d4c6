package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/internal/driver"
	"github.com/katalvlaran/wfc/wfc"
)

func TestCheckGrid(t *testing.T) {
	r := newRunner(t, testConfig(t))
	res, err := r.Generate(context.Background())
	require.NoError(t, err)

	rep, err := driver.CheckGrid(r.Store, res)
	require.NoError(t, err)
	assert.True(t, rep.Sound())
	assert.Empty(t, rep.First)
	assert.Equal(t, 30, rep.Summary.Resolved)
	assert.Equal(t, res.Summary, rep.Summary)
}

func TestCheckGrid_Violation(t *testing.T) {
	store, err := compat.New(2, compat.Synthesize(2), compat.DefaultNeighbors())
	require.NoError(t, err)

	// Pattern 2 has an arm on PosX; pattern 0 has none on NegX.
	res := driver.Result{Dimension: 2, Extents: []int{2, 1}, States: []int{2, 0}}
	rep, err := driver.CheckGrid(store, res)
	require.NoError(t, err)
	assert.False(t, rep.Sound())
	assert.NotEmpty(t, rep.First)
	assert.Len(t, rep.First, rep.Violations)

	// Joined arms form one region.
	res.States = []int{2, 1}
	rep, err = driver.CheckGrid(store, res)
	require.NoError(t, err)
	assert.True(t, rep.Sound())
	assert.Equal(t, 1, rep.Regions)
}

func TestCheckGrid_Errors(t *testing.T) {
	store, err := compat.New(2, compat.Synthesize(2), compat.DefaultNeighbors())
	require.NoError(t, err)

	_, err = driver.CheckGrid(nil, driver.Result{})
	assert.ErrorIs(t, err, driver.ErrNoStore)

	_, err = driver.CheckGrid(store, driver.Result{Dimension: 3, Extents: []int{2, 2}})
	assert.ErrorIs(t, err, driver.ErrDimension)

	_, err = driver.CheckGrid(store, driver.Result{Dimension: 2, Extents: []int{2, 2}, States: []int{0}})
	assert.ErrorIs(t, err, wfc.ErrStateCount)

	_, err = driver.CheckGrid(store, driver.Result{Dimension: 2, Extents: []int{1, 1}, States: []int{99}})
	assert.ErrorIs(t, err, wfc.ErrUnknownPattern)
}

func TestReadGrid_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := driver.ReadGrid(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = driver.ReadGrid(bad)
	assert.Error(t, err)
}
