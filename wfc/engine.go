package wfc

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/wfc/axis"
	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/vec"
)

// Engine runs Wave Function Collapse on one dense grid.
//
// cells is row-major; frontier holds the indices of cells not yet determined
// and pos[i] is the position of cell i inside frontier, or -1 once it left.
// onStack and candidates are scratch buffers reused across steps.
type Engine[V vec.Vector[V]] struct {
	store *compat.Store
	grid  layout[V]
	cells []Pattern[V]
	rng   Rand
	opts  Options

	frontier []int
	pos      []int

	steps          int
	contradictions []V

	onStack    []bool
	candidates []int
}

// New allocates a grid of the given extents, one Pattern per cell holding the
// full pattern universe, and seeds the frontier with every coordinate in
// row-major order. With opts.BoundaryConstraint, each cell on the low face of
// component i is constrained with axis.Pos(i) and each cell on the high face
// with axis.Neg(i); a cell on several faces is constrained once per face.
//
// Returns ErrNilStore, ErrBadExtents or ErrDimensionMismatch.
// Complexity: O(C×N) time and memory for C cells and N patterns.
func New[V vec.Vector[V]](store *compat.Store, extents V, opts Options) (*Engine[V], error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if extents.Dim() != store.Dimension() {
		return nil, fmt.Errorf("%w: %dD extents, %dD store", ErrDimensionMismatch, extents.Dim(), store.Dimension())
	}
	if vec.Product(extents) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadExtents, extents)
	}

	grid := newLayout(extents)
	e := &Engine[V]{
		store:    store,
		grid:     grid,
		cells:    make([]Pattern[V], grid.size),
		rng:      resolveRand(opts),
		opts:     opts,
		frontier: make([]int, grid.size),
		pos:      make([]int, grid.size),
		onStack:  make([]bool, grid.size),
	}

	universe := store.PatternIDs()
	for idx := 0; idx < grid.size; idx++ {
		c := grid.coord(idx)
		p := Pattern[V]{store: store, coords: c, possibilities: append([]int(nil), universe...)}
		if opts.BoundaryConstraint {
			if err := e.constrainBoundary(&p); err != nil {
				return nil, err
			}
		}
		e.cells[idx] = p
		e.frontier[idx] = idx
		e.pos[idx] = idx
	}

	return e, nil
}

// constrainBoundary applies the void constraint for every grid face p touches.
func (e *Engine[V]) constrainBoundary(p *Pattern[V]) error {
	for i := 0; i < e.grid.extents.Dim(); i++ {
		low, high := e.grid.onBoundary(p.coords, i)
		if low {
			if _, err := p.ApplyBoundaryConstraint(axis.Pos(i)); err != nil {
				return err
			}
		}
		if high {
			if _, err := p.ApplyBoundaryConstraint(axis.Neg(i)); err != nil {
				return err
			}
		}
	}

	return nil
}

// IsCollapsed reports whether the frontier is empty.
func (e *Engine[V]) IsCollapsed() bool { return len(e.frontier) == 0 }

// Iterate performs one select → collapse → propagate step and returns the
// coordinates determined during it, the selected cell first.
//
// Returns ErrAlreadyCollapsed when the frontier is empty. With
// Options.FailOnContradiction, a step that produced a zero-possibility cell
// returns its coordinates together with an error wrapping ErrContradiction;
// the grid stays consistent and later calls are still valid.
func (e *Engine[V]) Iterate() ([]V, error) {
	if e.IsCollapsed() {
		return nil, ErrAlreadyCollapsed
	}

	idx := e.selectMinEntropy()
	e.cells[idx].Collapse(e.rng)
	e.steps++

	before := len(e.contradictions)
	determined, err := e.propagate(idx)
	if err != nil {
		return determined, err
	}
	if e.opts.FailOnContradiction && len(e.contradictions) > before {
		return determined, fmt.Errorf("%w at %v (%d cells this step)",
			ErrContradiction, e.contradictions[before], len(e.contradictions)-before)
	}

	return determined, nil
}

// selectMinEntropy returns the index of a uniformly chosen frontier cell of
// minimum entropy. A strictly lower entropy resets the candidates; an equal
// one extends them.
func (e *Engine[V]) selectMinEntropy() int {
	minEntropy := math.MaxInt
	cand := e.candidates[:0]
	for _, idx := range e.frontier {
		h := e.cells[idx].Entropy()
		if h <= minEntropy {
			if h < minEntropy {
				minEntropy = h
				cand = cand[:0]
			}
			cand = append(cand, idx)
		}
	}
	e.candidates = cand

	if len(cand) > 1 {
		return cand[e.rng.Intn(len(cand))]
	}

	return cand[0]
}

// propagate removes start from the frontier and spreads constraints until the
// work stack drains. Neighbors that already left the frontier are skipped.
func (e *Engine[V]) propagate(start int) ([]V, error) {
	determined := []V{e.cells[start].coords}
	e.leave(start)

	stack := []int{start}
	e.onStack[start] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e.onStack[cur] = false

		from := &e.cells[cur]
		for _, d := range e.grid.dirs {
			nc := from.coords.Add(d)
			if !e.grid.inBounds(nc) {
				continue
			}
			nb := e.grid.index(nc)
			if e.pos[nb] < 0 {
				continue
			}

			admissible, err := from.PossibleNeighbors(d)
			if err != nil {
				e.clearStack(stack)
				return determined, err
			}
			changed, err := e.cells[nb].Constrain(d, admissible)
			if err != nil {
				e.clearStack(stack)
				return determined, err
			}
			if !changed {
				continue
			}
			if !e.onStack[nb] {
				e.onStack[nb] = true
				stack = append(stack, nb)
			}
			if e.cells[nb].Entropy() == 0 {
				e.leave(nb)
				determined = append(determined, nc)
			}
		}
	}

	return determined, nil
}

// leave removes idx from the frontier (swap-remove) and records contradictions.
func (e *Engine[V]) leave(idx int) {
	p := e.pos[idx]
	if p < 0 {
		return
	}
	last := e.frontier[len(e.frontier)-1]
	e.frontier[p] = last
	e.pos[last] = p
	e.frontier = e.frontier[:len(e.frontier)-1]
	e.pos[idx] = -1

	if e.cells[idx].Len() == 0 {
		e.contradictions = append(e.contradictions, e.cells[idx].coords)
	}
}

// clearStack resets the on-stack flags of an abandoned propagation.
func (e *Engine[V]) clearStack(stack []int) {
	for _, idx := range stack {
		e.onStack[idx] = false
	}
}

// Run calls Iterate until the grid is collapsed, ctx is done, onStep returns an
// error, or Iterate fails. onStep (may be nil) receives each step's coordinates.
// Stopping early leaves a valid, partially collapsed grid.
func (e *Engine[V]) Run(ctx context.Context, onStep func(coords []V) error) error {
	for !e.IsCollapsed() {
		if err := ctx.Err(); err != nil {
			return err
		}
		coords, err := e.Iterate()
		if onStep != nil && len(coords) > 0 {
			if cbErr := onStep(coords); cbErr != nil {
				return cbErr
			}
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Store returns the compatibility store the engine was built with.
func (e *Engine[V]) Store() *compat.Store { return e.store }

// Extents returns the grid extents.
func (e *Engine[V]) Extents() V { return e.grid.extents }

// Len returns the number of cells.
func (e *Engine[V]) Len() int { return e.grid.size }

// InBounds reports whether c lies inside the grid.
func (e *Engine[V]) InBounds(c V) bool { return e.grid.inBounds(c) }

// Steps returns the number of successful Iterate calls so far.
func (e *Engine[V]) Steps() int { return e.steps }

// Remaining returns the number of cells still on the frontier.
func (e *Engine[V]) Remaining() int { return len(e.frontier) }

// Contradictions returns the coordinates of cells that ran out of
// possibilities, in the order they were found.
func (e *Engine[V]) Contradictions() []V {
	return append([]V(nil), e.contradictions...)
}

// Pattern returns a deep copy of the cell at c.
func (e *Engine[V]) Pattern(c V) (Pattern[V], error) {
	if !e.grid.inBounds(c) {
		return Pattern[V]{}, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}

	return e.cells[e.grid.index(c)].clone(), nil
}

// State returns the resolved id and status of the cell at c.
func (e *Engine[V]) State(c V) (int, Status, error) {
	if !e.grid.inBounds(c) {
		return Undefined, Superposed, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	id, st := e.cells[e.grid.index(c)].State()

	return id, st, nil
}

// Entropy returns the entropy of the cell at c.
func (e *Engine[V]) Entropy(c V) (int, error) {
	if !e.grid.inBounds(c) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}

	return e.cells[e.grid.index(c)].Entropy(), nil
}

// InFrontier reports whether c is still waiting to be determined.
func (e *Engine[V]) InFrontier(c V) bool {
	return e.grid.inBounds(c) && e.pos[e.grid.index(c)] >= 0
}

// Frontier returns the frontier coordinates in row-major order.
func (e *Engine[V]) Frontier() []V {
	idx := append([]int(nil), e.frontier...)
	sort.Ints(idx)
	out := make([]V, len(idx))
	for i, j := range idx {
		out[i] = e.cells[j].coords
	}

	return out
}
