package wfc

import "errors"

// Sentinel errors for patterns and engines.
var (
	// ErrNilStore indicates a nil *compat.Store.
	ErrNilStore = errors.New("wfc: compatibility store is nil")

	// ErrBadExtents indicates a grid extent component < 1.
	ErrBadExtents = errors.New("wfc: grid extents must be positive")

	// ErrDimensionMismatch indicates extents whose size differs from the store dimension.
	ErrDimensionMismatch = errors.New("wfc: extents do not match store dimension")

	// ErrUnknownPattern indicates a possibility id outside the store universe.
	ErrUnknownPattern = errors.New("wfc: unknown pattern id")

	// ErrBadDirection indicates a direction that is not a canonical unit vector.
	ErrBadDirection = errors.New("wfc: invalid direction")

	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("wfc: coordinate out of bounds")

	// ErrAlreadyCollapsed indicates Iterate was called on a fully collapsed grid.
	ErrAlreadyCollapsed = errors.New("wfc: grid is already collapsed")

	// ErrStateCount indicates a state list whose length differs from the cell count.
	ErrStateCount = errors.New("wfc: state count does not match grid size")

	// ErrContradiction indicates a cell was reduced to zero possibilities.
	ErrContradiction = errors.New("wfc: contradiction")
)

// Undefined is the pattern id reported for cells that are not resolved.
const Undefined = -1

// VoidPattern is the pattern assumed beyond the grid edge by boundary constraints.
const VoidPattern = 0

// Status classifies the state of one cell.
type Status int

const (
	// Superposed cells still have two or more possibilities.
	Superposed Status = iota
	// Resolved cells have exactly one possibility.
	Resolved
	// Contradiction cells have no possibility left.
	Contradiction
)

// String returns "superposed", "resolved" or "contradiction".
func (s Status) String() string {
	switch s {
	case Superposed:
		return "superposed"
	case Resolved:
		return "resolved"
	case Contradiction:
		return "contradiction"
	default:
		return "unknown"
	}
}

// Rand is the source of randomness: Intn returns a uniform value in [0, n).
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Options configures an Engine.
//
// Fields:
//   - BoundaryConstraint: constrain edge cells as if VoidPattern surrounded the grid.
//   - Seed: seed of the default source; 0 selects a fixed default seed.
//   - Rand: explicit randomness source; takes precedence over Seed.
//   - FailOnContradiction: make Iterate return ErrContradiction when a step
//     produced a cell with zero possibilities.
type Options struct {
	BoundaryConstraint  bool
	Seed                int64
	Rand                Rand
	FailOnContradiction bool
}

// DefaultOptions returns Options without boundary constraint, seed 0 and
// silent contradictions.
func DefaultOptions() Options {
	return Options{}
}
