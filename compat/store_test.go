package compat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/axis"
	"github.com/katalvlaran/wfc/compat"
)

// uniform2D returns a 2D pattern table where every axis of pattern i uses group i.
func uniform2D(n int) compat.PatternTable {
	pt := make(compat.PatternTable, n)
	for i := 0; i < n; i++ {
		pt[i] = map[axis.Axis]int{axis.PosX: i, axis.NegX: i, axis.PosY: i, axis.NegY: i}
	}
	return pt
}

// TestNew_Errors verifies every fatal validation path of New.
func TestNew_Errors(t *testing.T) {
	full := compat.NeighborTable{0: {0, 1}, 1: {0, 1}}
	cases := []struct {
		name      string
		dim       int
		patterns  compat.PatternTable
		neighbors compat.NeighborTable
		err       error
	}{
		{"ZeroDimension", 0, uniform2D(2), full, compat.ErrBadDimension},
		{"HugeDimension", axis.MaxDimension + 1, uniform2D(2), full, compat.ErrBadDimension},
		{"Empty", 2, compat.PatternTable{}, full, compat.ErrEmptyStore},
		{"NegativePattern", 2, compat.PatternTable{-1: uniform2D(1)[0]}, full, compat.ErrBadID},
		{"Gap", 2, compat.PatternTable{0: uniform2D(1)[0], 2: uniform2D(1)[0]}, full, compat.ErrNonContiguous},
		{"NegativeGroup", 2, uniform2D(2), compat.NeighborTable{-1: {0}, 0: {0}, 1: {1}}, compat.ErrBadID},
		{"DanglingGroup", 2, uniform2D(3), full, compat.ErrDanglingGroup},
		{"MissingAxis", 2, compat.PatternTable{0: {axis.PosX: 0, axis.NegX: 0, axis.PosY: 0}}, full, compat.ErrMissingAxis},
		{"AxisOutsideDimension", 2, compat.PatternTable{0: {axis.PosX: 0, axis.NegX: 0, axis.PosY: 0, axis.NegY: 0, axis.PosZ: 0}}, full, compat.ErrUnknownAxis},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := compat.New(tc.dim, tc.patterns, tc.neighbors)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestStore_Lookups exercises the query surface on a tiny two-pattern table.
func TestStore_Lookups(t *testing.T) {
	s, err := compat.New(2, uniform2D(2), compat.NeighborTable{0: {0, 1, 1}, 1: {1}})
	require.NoError(t, err)

	assert.Equal(t, 2, s.Dimension())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []int{0, 1}, s.PatternIDs())
	assert.Equal(t, []int{0, 1}, s.Groups())
	assert.Equal(t, axis.All(2), s.Axes())

	g, err := s.StateOnAxis(1, axis.NegY)
	require.NoError(t, err)
	assert.Equal(t, 1, g)

	ns, err := s.NeighborsOnAxis(0, axis.PosX)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, ns, "duplicates are dropped, order kept")

	ns[0] = 99
	again, _ := s.NeighborsOnAxis(0, axis.PosX)
	assert.Equal(t, []int{0, 1}, again, "returned slices are copies")

	buf, err := s.AppendNeighbors([]int{7}, 1, axis.NegX)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 1}, buf)

	ok, err := s.Admits(1, axis.PosY, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Compatible(0, axis.PosX, 1)
	require.NoError(t, err)
	assert.True(t, ok, "state(1,NegX)=1 is admitted by group 0")

	ok, err = s.Compatible(1, axis.PosX, 0)
	require.NoError(t, err)
	assert.False(t, ok, "state(0,NegX)=0 is not admitted by group 1")
}

// TestStore_LookupErrors verifies unknown ids and axes are rejected.
func TestStore_LookupErrors(t *testing.T) {
	s, err := compat.New(2, uniform2D(2), compat.NeighborTable{0: {0}, 1: {1}})
	require.NoError(t, err)

	_, err = s.StateOnAxis(2, axis.PosX)
	assert.ErrorIs(t, err, compat.ErrUnknownPattern)
	_, err = s.NeighborsOnAxis(-1, axis.PosX)
	assert.ErrorIs(t, err, compat.ErrUnknownPattern)
	_, err = s.NeighborsOnAxis(0, axis.PosZ)
	assert.ErrorIs(t, err, compat.ErrUnknownAxis)
	_, err = s.Admits(0, axis.None, 0)
	assert.ErrorIs(t, err, compat.ErrUnknownAxis)
}

// TestNew_CopiesInput ensures later mutation of the input tables is invisible.
func TestNew_CopiesInput(t *testing.T) {
	pt := uniform2D(2)
	nt := compat.NeighborTable{0: {0}, 1: {1}}
	s, err := compat.New(2, pt, nt)
	require.NoError(t, err)

	pt[0][axis.PosX] = 1
	nt[0][0] = 5

	g, _ := s.StateOnAxis(0, axis.PosX)
	assert.Equal(t, 0, g)
	ns, _ := s.NeighborsOnAxis(0, axis.PosX)
	assert.Equal(t, []int{0}, ns)
}

// TestTables_RoundTrip rebuilds a store from its own tables.
func TestTables_RoundTrip(t *testing.T) {
	s, err := compat.New(2, compat.Synthesize(2), compat.DefaultNeighbors())
	require.NoError(t, err)

	pt, nt := s.Tables()
	assert.Equal(t, compat.Synthesize(2), pt)

	s2, err := compat.New(2, pt, nt)
	require.NoError(t, err)
	assert.Equal(t, s.Len(), s2.Len())
}
