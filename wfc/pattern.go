package wfc

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/wfc/axis"
	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/vec"
)

// Pattern is the superposition state of one grid cell.
//
// possibilities keeps the store order of the ids that remain; it only ever
// shrinks. coords never changes after construction. The store is shared by
// every Pattern of every grid and is never mutated.
type Pattern[V vec.Vector[V]] struct {
	store         *compat.Store
	coords        V
	possibilities []int
}

// NewPattern creates a Pattern at coords with the given possibilities, or with
// the full store universe when possibilities is nil. The slice is copied.
//
// Returns ErrNilStore or ErrUnknownPattern for ids outside the store.
func NewPattern[V vec.Vector[V]](store *compat.Store, coords V, possibilities []int) (Pattern[V], error) {
	if store == nil {
		return Pattern[V]{}, ErrNilStore
	}
	if possibilities == nil {
		return Pattern[V]{store: store, coords: coords, possibilities: store.PatternIDs()}, nil
	}
	for _, id := range possibilities {
		if id < 0 || id >= store.Len() {
			return Pattern[V]{}, fmt.Errorf("%w: %d", ErrUnknownPattern, id)
		}
	}

	return Pattern[V]{store: store, coords: coords, possibilities: slices.Clone(possibilities)}, nil
}

// Coordinates returns the fixed grid coordinates of the cell.
func (p *Pattern[V]) Coordinates() V { return p.coords }

// Possibilities returns a copy of the remaining pattern ids.
func (p *Pattern[V]) Possibilities() []int { return slices.Clone(p.possibilities) }

// Len returns the number of remaining possibilities.
func (p *Pattern[V]) Len() int { return len(p.possibilities) }

// Entropy returns |possibilities|-1, floored at 0. Zero means resolved or
// contradicted; positive means still in superposition.
func (p *Pattern[V]) Entropy() int {
	if len(p.possibilities) <= 1 {
		return 0
	}

	return len(p.possibilities) - 1
}

// State returns the resolved id with Resolved, or Undefined with Superposed
// or Contradiction.
func (p *Pattern[V]) State() (int, Status) {
	switch len(p.possibilities) {
	case 0:
		return Undefined, Contradiction
	case 1:
		return p.possibilities[0], Resolved
	default:
		return Undefined, Superposed
	}
}

// Collapse keeps one possibility chosen uniformly with r.
// No-op when at most one possibility remains (r is not consulted).
func (p *Pattern[V]) Collapse(r Rand) {
	if len(p.possibilities) <= 1 {
		return
	}
	p.possibilities = []int{p.possibilities[r.Intn(len(p.possibilities))]}
}

// Constrain removes every possibility whose state on the axis facing the
// constraining neighbor is not in admissible.
//
// direction points from the neighbor towards this cell, so the shared edge is
// seen on axis.FromVector(-direction) from here. Returns false without work
// when the cell is already at entropy 0, and true iff a possibility was
// removed.
//
// Complexity: O(|possibilities| + |admissible|).
func (p *Pattern[V]) Constrain(direction V, admissible []int) (bool, error) {
	if p.Entropy() == 0 {
		return false, nil
	}
	facing := axis.FromVector(direction.Neg())
	if !facing.Valid(p.store.Dimension()) {
		return false, fmt.Errorf("%w: %v", ErrBadDirection, direction)
	}

	allowed := make(map[int]struct{}, len(admissible))
	for _, v := range admissible {
		allowed[v] = struct{}{}
	}
	before := len(p.possibilities)
	kept := make([]int, 0, before)
	for _, id := range p.possibilities {
		state, err := p.store.StateOnAxis(id, facing)
		if err != nil {
			return false, err
		}
		if _, ok := allowed[state]; ok {
			kept = append(kept, id)
		}
	}
	p.possibilities = kept

	return len(kept) < before, nil
}

// PossibleNeighbors returns the deduplicated union, over every remaining
// possibility, of the values it admits in direction, in first-seen order.
//
// Complexity: O(|possibilities| × K) for groups of up to K values.
func (p *Pattern[V]) PossibleNeighbors(direction V) ([]int, error) {
	a := axis.FromVector(direction)
	if !a.Valid(p.store.Dimension()) {
		return nil, fmt.Errorf("%w: %v", ErrBadDirection, direction)
	}

	var (
		buf  []int
		out  []int
		seen = make(map[int]struct{})
		err  error
	)
	for _, id := range p.possibilities {
		buf, err = p.store.AppendNeighbors(buf[:0], id, a)
		if err != nil {
			return nil, err
		}
		for _, v := range buf {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out, nil
}

// ApplyBoundaryConstraint constrains the cell as if VoidPattern were resolved
// just outside the grid on the side opposite to a, i.e. as if the void cell
// were constraining this one in direction a. Applying it twice changes nothing
// the second time.
func (p *Pattern[V]) ApplyBoundaryConstraint(a axis.Axis) (bool, error) {
	if !a.Valid(p.store.Dimension()) {
		return false, fmt.Errorf("%w: %s", ErrBadDirection, a)
	}
	admissible, err := p.store.NeighborsOnAxis(VoidPattern, a)
	if err != nil {
		return false, err
	}

	return p.Constrain(axis.Vector[V](a), admissible)
}

// clone returns a deep copy that does not alias p's possibilities.
func (p *Pattern[V]) clone() Pattern[V] {
	return Pattern[V]{store: p.store, coords: p.coords, possibilities: slices.Clone(p.possibilities)}
}
