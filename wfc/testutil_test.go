// Package wfc_test holds fixtures shared by the engine and pattern tests.
package wfc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/axis"
	"github.com/katalvlaran/wfc/compat"
)

// scriptedRand replays vals in order (each reduced modulo n) and records the
// bounds it was asked for.
type scriptedRand struct {
	vals  []int
	calls []int
}

func (r *scriptedRand) Intn(n int) int {
	r.calls = append(r.calls, n)
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v % n
}

// uniformTable gives every axis of pattern i the group i.
func uniformTable(dim, n int) compat.PatternTable {
	pt := make(compat.PatternTable, n)
	for i := 0; i < n; i++ {
		m := make(map[axis.Axis]int, 2*dim)
		for _, a := range axis.All(dim) {
			m[a] = i
		}
		pt[i] = m
	}
	return pt
}

// permissiveStore has n mutually compatible 2D patterns.
func permissiveStore(t *testing.T, n int) *compat.Store {
	t.Helper()
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	nt := make(compat.NeighborTable, n)
	for i := 0; i < n; i++ {
		nt[i] = all
	}
	s, err := compat.New(2, uniformTable(2, n), nt)
	require.NoError(t, err)
	return s
}

// synthStore is the exhaustive arm table with socket identity.
func synthStore(t testing.TB, dim int) *compat.Store {
	t.Helper()
	s, err := compat.New(dim, compat.Synthesize(dim), compat.DefaultNeighbors(), compat.WithStrictSymmetry())
	require.NoError(t, err)
	return s
}

// deadStore makes the low-X boundary unsatisfiable: pattern 0 admits only the
// value 7 on PosX, which no pattern carries on NegX.
func deadStore(t *testing.T) *compat.Store {
	t.Helper()
	pt := compat.PatternTable{
		0: {axis.PosX: 2, axis.NegX: 0, axis.PosY: 0, axis.NegY: 0},
		1: {axis.PosX: 0, axis.NegX: 0, axis.PosY: 0, axis.NegY: 0},
	}
	nt := compat.NeighborTable{0: {0}, 2: {7}}
	s, err := compat.New(2, pt, nt)
	require.NoError(t, err)
	return s
}
