package compat

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/wfc/axis"
)

// Store is the validated, read-only compatibility table of one dimensionality.
//
// Internally every pattern owns a dense row of 2×D group ids indexed by axis
// slot (Pos(i) → 2i, Neg(i) → 2i+1), and every group owns both its ordered value
// list and a membership set.
type Store struct {
	dim    int
	axes   []axis.Axis
	states [][]int              // [pattern][slot] → group id
	groups map[int][]int        // group id → admitted values, load order, deduplicated
	sets   map[int]map[int]bool // group id → membership of groups[id]
	ids    []int
}

// New validates the given tables and builds a Store.
// The tables are deep-copied; later changes to them do not affect the Store.
//
// Returns ErrBadDimension, ErrEmptyStore, ErrBadID, ErrNonContiguous,
// ErrUnknownAxis, ErrMissingAxis, ErrDanglingGroup or, under
// WithStrictSymmetry, ErrAsymmetric.
//
// Complexity: O(N×D + G×K) for N patterns, G groups of up to K values.
func New(dim int, patterns PatternTable, neighbors NeighborTable, opts ...Option) (*Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if dim < 1 || dim > axis.MaxDimension {
		return nil, fmt.Errorf("%w: %d", ErrBadDimension, dim)
	}
	if len(patterns) == 0 {
		return nil, ErrEmptyStore
	}

	s := &Store{
		dim:    dim,
		axes:   axis.All(dim),
		states: make([][]int, len(patterns)),
		groups: make(map[int][]int, len(neighbors)),
		sets:   make(map[int]map[int]bool, len(neighbors)),
		ids:    make([]int, len(patterns)),
	}

	for g, values := range neighbors {
		if g < 0 {
			return nil, fmt.Errorf("%w: neighbor group %d", ErrBadID, g)
		}
		list := make([]int, 0, len(values))
		set := make(map[int]bool, len(values))
		for _, v := range values {
			if set[v] {
				continue
			}
			set[v] = true
			list = append(list, v)
		}
		s.groups[g] = list
		s.sets[g] = set
	}

	for id, byAxis := range patterns {
		if id < 0 {
			return nil, fmt.Errorf("%w: pattern %d", ErrBadID, id)
		}
		if id >= len(patterns) {
			return nil, fmt.Errorf("%w: pattern %d with %d patterns", ErrNonContiguous, id, len(patterns))
		}
		row := make([]int, len(s.axes))
		seen := make([]bool, len(s.axes))
		for a, g := range byAxis {
			if !a.Valid(dim) {
				return nil, fmt.Errorf("%w: %s on pattern %d in %dD", ErrUnknownAxis, a, id, dim)
			}
			if _, ok := s.groups[g]; !ok {
				return nil, fmt.Errorf("%w: group %d on pattern %d axis %s", ErrDanglingGroup, g, id, a)
			}
			slot := slotOf(a)
			row[slot] = g
			seen[slot] = true
		}
		for slot, ok := range seen {
			if !ok {
				return nil, fmt.Errorf("%w: pattern %d has no %s", ErrMissingAxis, id, s.axes[slot])
			}
		}
		s.states[id] = row
	}
	for i := range s.ids {
		s.ids[i] = i
	}

	if o.strictSymmetry {
		if asym := s.Asymmetries(); len(asym) > 0 {
			first := asym[0]
			return nil, fmt.Errorf("%w: %d violations, first: %d admits %d on %s",
				ErrAsymmetric, len(asym), first.From, first.To, first.Axis)
		}
	}

	return s, nil
}

// slotOf maps an axis to its column in the dense per-pattern row.
func slotOf(a axis.Axis) int {
	if a.Positive() {
		return 2 * a.Index()
	}

	return 2*a.Index() + 1
}

// Dimension returns the lattice dimension D of the store.
func (s *Store) Dimension() int { return s.dim }

// Len returns the number of patterns N.
func (s *Store) Len() int { return len(s.ids) }

// Axes returns the 2×D axes of the store in All order.
func (s *Store) Axes() []axis.Axis { return slices.Clone(s.axes) }

// PatternIDs returns the pattern universe 0..N-1 in ascending order.
// The returned slice is a fresh copy owned by the caller.
func (s *Store) PatternIDs() []int { return slices.Clone(s.ids) }

// Groups returns all neighbor-group ids in ascending order.
func (s *Store) Groups() []int {
	out := make([]int, 0, len(s.groups))
	for g := range s.groups {
		out = append(out, g)
	}
	sort.Ints(out)

	return out
}

// lookup resolves (id, a) to its group id.
func (s *Store) lookup(id int, a axis.Axis) (int, error) {
	if id < 0 || id >= len(s.states) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownPattern, id)
	}
	if !a.Valid(s.dim) {
		return 0, fmt.Errorf("%w: %s in %dD", ErrUnknownAxis, a, s.dim)
	}

	return s.states[id][slotOf(a)], nil
}

// StateOnAxis returns the neighbor-group id of pattern id on axis a.
func (s *Store) StateOnAxis(id int, a axis.Axis) (int, error) {
	return s.lookup(id, a)
}

// NeighborsOnAxis returns the values admitted next to pattern id in direction a.
// The returned slice is a fresh copy owned by the caller.
func (s *Store) NeighborsOnAxis(id int, a axis.Axis) ([]int, error) {
	g, err := s.lookup(id, a)
	if err != nil {
		return nil, err
	}

	return slices.Clone(s.groups[g]), nil
}

// AppendNeighbors appends NeighborsOnAxis(id, a) to dst and returns the result.
// It avoids the copy made by NeighborsOnAxis in hot loops.
func (s *Store) AppendNeighbors(dst []int, id int, a axis.Axis) ([]int, error) {
	g, err := s.lookup(id, a)
	if err != nil {
		return dst, err
	}

	return append(dst, s.groups[g]...), nil
}

// Admits reports whether value v is admitted next to pattern id in direction a.
func (s *Store) Admits(id int, a axis.Axis, v int) (bool, error) {
	g, err := s.lookup(id, a)
	if err != nil {
		return false, err
	}

	return s.sets[g][v], nil
}

// Compatible reports whether pattern b may sit next to pattern a in direction d,
// i.e. whether b's state on d.Reverse() is admitted by a on d.
func (s *Store) Compatible(a int, d axis.Axis, b int) (bool, error) {
	state, err := s.lookup(b, d.Reverse())
	if err != nil {
		return false, err
	}

	return s.Admits(a, d, state)
}

// Tables returns deep copies of the pattern and neighbor tables, suitable for
// writing back to disk.
func (s *Store) Tables() (PatternTable, NeighborTable) {
	pt := make(PatternTable, len(s.states))
	for id, row := range s.states {
		m := make(map[axis.Axis]int, len(row))
		for slot, g := range row {
			m[s.axes[slot]] = g
		}
		pt[id] = m
	}
	nt := make(NeighborTable, len(s.groups))
	for g, values := range s.groups {
		nt[g] = slices.Clone(values)
	}

	return pt, nt
}
