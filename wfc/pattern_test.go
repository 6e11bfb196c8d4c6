package wfc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/axis"
	"github.com/katalvlaran/wfc/vec"
	"github.com/katalvlaran/wfc/wfc"
)

// TestNewPattern_Errors rejects a nil store and ids outside the universe.
func TestNewPattern_Errors(t *testing.T) {
	_, err := wfc.NewPattern[vec.Vec2](nil, vec.Zero2, nil)
	assert.ErrorIs(t, err, wfc.ErrNilStore)

	s := permissiveStore(t, 3)
	_, err = wfc.NewPattern(s, vec.Zero2, []int{0, 3})
	assert.ErrorIs(t, err, wfc.ErrUnknownPattern)
	_, err = wfc.NewPattern(s, vec.Zero2, []int{-1})
	assert.ErrorIs(t, err, wfc.ErrUnknownPattern)
}

// TestPattern_EntropyAndState walks a cell through all three statuses.
func TestPattern_EntropyAndState(t *testing.T) {
	s := synthStore(t, 2)
	p, err := wfc.NewPattern(s, vec.V2(3, 4), nil)
	require.NoError(t, err)

	assert.Equal(t, vec.V2(3, 4), p.Coordinates())
	assert.Equal(t, 15, p.Entropy())
	id, st := p.State()
	assert.Equal(t, wfc.Undefined, id)
	assert.Equal(t, wfc.Superposed, st)

	r := &scriptedRand{vals: []int{5}}
	p.Collapse(r)
	assert.Equal(t, 0, p.Entropy())
	id, st = p.State()
	assert.Equal(t, 5, id)
	assert.Equal(t, wfc.Resolved, st)

	// Collapsing again is a no-op and does not consume randomness.
	p.Collapse(r)
	assert.Equal(t, []int{16}, r.calls)
	assert.Equal(t, []int{5}, p.Possibilities())

	empty, err := wfc.NewPattern(s, vec.Zero2, []int{})
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Entropy(), "zero possibilities still report entropy 0")
	id, st = empty.State()
	assert.Equal(t, wfc.Undefined, id)
	assert.Equal(t, wfc.Contradiction, st)
	assert.Equal(t, "contradiction", st.String())
}

// TestPattern_PossibleNeighbors unions and deduplicates admitted values.
func TestPattern_PossibleNeighbors(t *testing.T) {
	s := synthStore(t, 2)

	// 2 has a PosX arm, 0 has none: both sockets may follow on the right.
	p, err := wfc.NewPattern(s, vec.Zero2, []int{2, 0, 3})
	require.NoError(t, err)
	got, err := p.PossibleNeighbors(vec.Right2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, got)

	// None of 2, 0, 3 has a PosY arm (bit 3).
	got, err = p.PossibleNeighbors(vec.Down2)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, got)

	_, err = p.PossibleNeighbors(vec.Zero2)
	assert.ErrorIs(t, err, wfc.ErrBadDirection)
}

// TestPattern_Constrain filters on the axis facing the constraining neighbor.
func TestPattern_Constrain(t *testing.T) {
	s := synthStore(t, 2)
	p, err := wfc.NewPattern(s, vec.V2(1, 0), nil)
	require.NoError(t, err)

	// The neighbor on the left (direction Right into this cell) has an arm:
	// only patterns with a NegX arm (bit 0 set) survive.
	changed, err := p.Constrain(vec.Right2, []int{1})
	require.NoError(t, err)
	assert.True(t, changed)
	for _, id := range p.Possibilities() {
		assert.Equal(t, 1, id&1, "pattern %d lacks a NegX arm", id)
	}
	assert.Equal(t, 7, p.Entropy())

	changed, err = p.Constrain(vec.Right2, []int{0, 1})
	require.NoError(t, err)
	assert.False(t, changed, "a permissive set removes nothing")

	_, err = p.Constrain(vec.Zero2, []int{0})
	assert.ErrorIs(t, err, wfc.ErrBadDirection)

	// Resolved cells are never constrained, even by an empty set.
	one, err := wfc.NewPattern(s, vec.Zero2, []int{4})
	require.NoError(t, err)
	changed, err = one.Constrain(vec.Up2, nil)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, []int{4}, one.Possibilities())
}

// TestPattern_ApplyBoundaryConstraint_Idempotent checks the void boundary.
func TestPattern_ApplyBoundaryConstraint_Idempotent(t *testing.T) {
	s := synthStore(t, 2)
	p, err := wfc.NewPattern(s, vec.Zero2, nil)
	require.NoError(t, err)

	changed, err := p.ApplyBoundaryConstraint(axis.PosX)
	require.NoError(t, err)
	assert.True(t, changed)
	for _, id := range p.Possibilities() {
		assert.Zero(t, id&1, "pattern %d points a NegX arm into the void", id)
	}
	first := p.Possibilities()

	changed, err = p.ApplyBoundaryConstraint(axis.PosX)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, first, p.Possibilities())

	_, err = p.ApplyBoundaryConstraint(axis.PosZ)
	assert.ErrorIs(t, err, wfc.ErrBadDirection)
}
