package wfc

import (
	"fmt"

	"github.com/katalvlaran/wfc/vec"
)

// Cell is the read-only view of one grid cell inside a Snapshot.
type Cell[V vec.Vector[V]] struct {
	Coord   V
	State   int // resolved pattern id, or Undefined
	Status  Status
	Entropy int
	Options int // number of remaining possibilities
}

// Snapshot is an immutable copy of the grid state, safe to hand to renderers
// and analyzers while the engine keeps iterating.
type Snapshot[V vec.Vector[V]] struct {
	grid  layout[V]
	cells []Cell[V]
}

// Snapshot copies the current state of every cell.
// Complexity: O(C).
func (e *Engine[V]) Snapshot() *Snapshot[V] {
	cells := make([]Cell[V], len(e.cells))
	for i := range e.cells {
		p := &e.cells[i]
		id, st := p.State()
		cells[i] = Cell[V]{
			Coord:   p.coords,
			State:   id,
			Status:  st,
			Entropy: p.Entropy(),
			Options: p.Len(),
		}
	}

	return &Snapshot[V]{grid: e.grid, cells: cells}
}

// Extents returns the grid extents.
func (s *Snapshot[V]) Extents() V { return s.grid.extents }

// Len returns the number of cells.
func (s *Snapshot[V]) Len() int { return len(s.cells) }

// InBounds reports whether c lies inside the grid.
func (s *Snapshot[V]) InBounds(c V) bool { return s.grid.inBounds(c) }

// At returns the cell at c; ok is false when c is out of bounds.
func (s *Snapshot[V]) At(c V) (cell Cell[V], ok bool) {
	if !s.grid.inBounds(c) {
		return Cell[V]{}, false
	}

	return s.cells[s.grid.index(c)], true
}

// Cells returns every cell in row-major order. The slice is a copy.
func (s *Snapshot[V]) Cells() []Cell[V] {
	return append([]Cell[V](nil), s.cells...)
}

// Directions returns the 2×D unit directions in axis.All order.
func (s *Snapshot[V]) Directions() []V {
	return append([]V(nil), s.grid.dirs...)
}

// Collapsed reports whether no cell is superposed.
func (s *Snapshot[V]) Collapsed() bool {
	for i := range s.cells {
		if s.cells[i].Status == Superposed {
			return false
		}
	}

	return true
}

// States returns the state of every cell in row-major order; unresolved cells
// report Undefined.
func (s *Snapshot[V]) States() []int {
	out := make([]int, len(s.cells))
	for i := range s.cells {
		out[i] = s.cells[i].State
	}

	return out
}

// SnapshotFromStates rebuilds a fully collapsed snapshot from row-major
// states, e.g. a grid saved by an earlier run. Undefined marks a contradiction.
//
// Returns ErrBadExtents, ErrStateCount, or ErrUnknownPattern for other
// negative ids. Ids are not checked against any store.
func SnapshotFromStates[V vec.Vector[V]](extents V, states []int) (*Snapshot[V], error) {
	if vec.Product(extents) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadExtents, extents)
	}
	grid := newLayout(extents)
	if len(states) != grid.size {
		return nil, fmt.Errorf("%w: %d states for %d cells", ErrStateCount, len(states), grid.size)
	}

	cells := make([]Cell[V], grid.size)
	for i, id := range states {
		c := Cell[V]{Coord: grid.coord(i), State: id}
		switch {
		case id >= 0:
			c.Status, c.Options = Resolved, 1
		case id == Undefined:
			c.Status = Contradiction
		default:
			return nil, fmt.Errorf("%w: %d at %v", ErrUnknownPattern, id, c.Coord)
		}
		cells[i] = c
	}

	return &Snapshot[V]{grid: grid, cells: cells}, nil
}
