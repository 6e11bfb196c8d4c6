package compat

import (
	"errors"

	"github.com/katalvlaran/wfc/axis"
)

// Sentinel errors for compatibility data.
var (
	// ErrBadDimension indicates a dimension outside 1..axis.MaxDimension.
	ErrBadDimension = errors.New("compat: dimension out of range")

	// ErrNeighborsNotFound indicates the neighbor-group file is absent.
	ErrNeighborsNotFound = errors.New("compat: neighbor file not found")

	// ErrMalformed indicates a file that does not decode into the expected schema.
	ErrMalformed = errors.New("compat: malformed compatibility file")

	// ErrBadID indicates an id that is not a non-negative decimal integer.
	ErrBadID = errors.New("compat: invalid id")

	// ErrNonContiguous indicates pattern ids that are not exactly 0..N-1.
	ErrNonContiguous = errors.New("compat: pattern ids must be contiguous from 0")

	// ErrUnknownAxis indicates an unknown axis name or an axis outside the dimension.
	ErrUnknownAxis = axis.ErrUnknownAxis

	// ErrMissingAxis indicates a pattern without an entry for one of its axes.
	ErrMissingAxis = errors.New("compat: pattern is missing an axis")

	// ErrDanglingGroup indicates a neighbor group referenced but never defined.
	ErrDanglingGroup = errors.New("compat: unknown neighbor group")

	// ErrUnknownPattern indicates a lookup with an id outside the pattern universe.
	ErrUnknownPattern = errors.New("compat: unknown pattern id")

	// ErrEmptyStore indicates a pattern table without any pattern.
	ErrEmptyStore = errors.New("compat: no patterns")

	// ErrAsymmetric indicates an asymmetric table under WithStrictSymmetry.
	ErrAsymmetric = errors.New("compat: compatibility table is not symmetric")
)

// PatternTable maps pattern id → axis → neighbor-group id.
type PatternTable map[int]map[axis.Axis]int

// NeighborTable maps neighbor-group id → admitted values.
type NeighborTable map[int][]int

// Asymmetry records that To is admitted next to From along Axis while From is
// not admitted next to To along Axis.Reverse().
type Asymmetry struct {
	From int
	Axis axis.Axis
	To   int
}

// Option configures Load and New.
type Option func(*options)

type options struct {
	strictSymmetry bool
	persist        bool
}

func defaultOptions() options {
	return options{persist: true}
}

// WithStrictSymmetry rejects tables with any Asymmetry (ErrAsymmetric).
func WithStrictSymmetry() Option {
	return func(o *options) { o.strictSymmetry = true }
}

// WithoutPersist keeps a synthesized pattern table in memory only.
func WithoutPersist() Option {
	return func(o *options) { o.persist = false }
}
